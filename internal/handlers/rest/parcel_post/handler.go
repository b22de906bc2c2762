package parcel_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"

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
	var parcelDTO dto.ParcelCreate
	err := json.NewDecoder(r.Body).Decode(&parcelDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	parcelModifyEntity := entities.ParcelModify{
		CustomerID:  &parcelDTO.CustomerID,
		Description: &parcelDTO.Description,
		Note:        parcelDTO.Note,
		ArrivedAt:   &parcelDTO.ArrivedAt,
		DeliveredAt: parcelDTO.DeliveredAt,
	}
	if parcelDTO.BaseFee != nil {
		baseFee, err := decimal.NewFromString(*parcelDTO.BaseFee)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		parcelModifyEntity.BaseFee = &baseFee
	}
	if parcelDTO.Status != nil {
		status := entities.ParcelStatusType(*parcelDTO.Status)
		parcelModifyEntity.Status = &status
	}

	created, err := h.service.CreateParcel(r.Context(), parcelModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, parcel.ErrMissingRequiredFields),
			errors.Is(err, parcel.ErrInvalidDescription),
			errors.Is(err, parcel.ErrInvalidStatus),
			errors.Is(err, parcel.ErrInvalidBaseFee),
			errors.Is(err, parcel.ErrDeliveredBeforeArrival):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, parcel.ErrCustomerNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, parcel.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toDTO(created)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
