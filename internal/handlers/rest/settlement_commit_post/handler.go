package settlement_commit_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"encomendas/internal/dto"
	"encomendas/internal/entities"
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
	var request dto.SettlementCommitRequest
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	rows := make([]entities.SettlementRow, len(request.Rows))
	for i, row := range request.Rows {
		rows[i] = entities.SettlementRow{
			ParcelID: row.ParcelID,
			Amount:   row.Amount,
		}
	}

	result, err := h.service.SettleCommit(r.Context(), request.Actor, rows)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingActor),
			errors.Is(err, parcel.ErrEmptySelection):
			w.WriteHeader(http.StatusBadRequest)
		default:
			// Partial results are possible, but without a full commit the
			// caller must re-preview anyway.
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.SettlementCommitResponse{
		Settled:   result.Settled,
		Errors:    result.Errors,
		Conflicts: result.Conflicts,
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
