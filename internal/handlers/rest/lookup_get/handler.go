package lookup_get

import (
	"encoding/json"
	"errors"
	"net/http"

	"encomendas/internal/dto"
	"encomendas/internal/service/lookup"
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
	result, err := h.service.Lookup(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		switch {
		case errors.Is(err, lookup.ErrEmptyQuery):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.LookupResponse{
		Matches:    make([]dto.LookupMatch, len(result.Matches)),
		GrandTotal: result.GrandTotal.StringFixed(2),
	}
	for i, match := range result.Matches {
		matchDTO := dto.LookupMatch{
			CustomerID:   match.CustomerID,
			CustomerName: match.CustomerName,
			Parcels:      make([]dto.LookupParcel, len(match.Parcels)),
			Total:        match.Total.StringFixed(2),
		}
		for j, p := range match.Parcels {
			matchDTO.Parcels[j] = dto.LookupParcel{
				ParcelID:    p.ParcelID,
				Description: p.Description,
				ArrivedAt:   p.ArrivedAt,
				DaysInStock: p.DaysInStock,
				Accrual:     p.Accrual.StringFixed(2),
				Overdue:     p.Overdue,
			}
		}
		response.Matches[i] = matchDTO
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
