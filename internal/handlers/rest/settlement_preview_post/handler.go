package settlement_preview_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"encomendas/internal/dto"
	"encomendas/internal/service/parcel"
	"encomendas/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var request dto.SettlementPreviewRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	preview, err := h.service.SettlePreview(r.Context(), request.ParcelIDs)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrEmptySelection):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.SettlementPreviewResponse{
		Groups:       make([]dto.SettlementGroup, len(preview.Groups)),
		HasDuplicate: preview.HasDuplicate,
		GeneratedAt:  preview.GeneratedAt,
	}
	for i, group := range preview.Groups {
		groupDTO := dto.SettlementGroup{
			CustomerID:     group.CustomerID,
			CustomerName:   group.CustomerName,
			Items:          make([]dto.SettlementItem, len(group.Items)),
			SuggestedTotal: group.SuggestedTotal.StringFixed(2),
		}
		for j, item := range group.Items {
			groupDTO.Items[j] = dto.SettlementItem{
				ParcelID:     item.ParcelID,
				Description:  item.Description,
				ArrivedAt:    item.ArrivedAt,
				Status:       item.Status.String(),
				DaysInStock:  item.DaysInStock,
				Multiplier:   item.Multiplier,
				BaseFee:      item.BaseFee.StringFixed(2),
				SuggestedFee: item.SuggestedFee.StringFixed(2),
				Overdue:      item.Overdue,
			}
		}
		response.Groups[i] = groupDTO
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
