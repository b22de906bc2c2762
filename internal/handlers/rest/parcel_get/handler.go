package parcel_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

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
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	parcelEntity, err := h.service.GetParcel(r.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrParcelNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toDTO(parcelEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDTO(p *entities.Parcel) dto.Parcel {
	parcelDTO := dto.Parcel{
		ID:          p.ID,
		CustomerID:  p.CustomerID,
		Description: p.Description,
		Note:        p.Note,
		ArrivedAt:   p.ArrivedAt,
		DeliveredAt: p.DeliveredAt,
		BaseFee:     p.BaseFee.StringFixed(2),
		Status:      p.Status.String(),
		Discarded:   p.Discarded,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.ComputedFee != nil {
		computed := p.ComputedFee.StringFixed(2)
		parcelDTO.ComputedFee = &computed
	}
	if p.ChargedFee != nil {
		charged := p.ChargedFee.StringFixed(2)
		parcelDTO.ChargedFee = &charged
	}
	return parcelDTO
}
