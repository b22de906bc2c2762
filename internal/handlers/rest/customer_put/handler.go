package customer_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"encomendas/internal/dto"
	"encomendas/internal/entities"
	"encomendas/internal/service/customer"
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
	var customerDTO dto.CustomerUpdate
	err := json.NewDecoder(r.Body).Decode(&customerDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	customerModifyEntity := entities.CustomerModify{
		ID:    &customerDTO.ID,
		Name:  customerDTO.Name,
		CPF:   customerDTO.CPF,
		RG:    customerDTO.RG,
		Phone: customerDTO.Phone,
		Email: customerDTO.Email,
	}
	if customerDTO.Gender != nil {
		gender := entities.GenderType(*customerDTO.Gender)
		customerModifyEntity.Gender = &gender
	}

	updated, err := h.service.UpdateCustomer(r.Context(), customerModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, customer.ErrMissingRequiredFields),
			errors.Is(err, customer.ErrInvalidName),
			errors.Is(err, customer.ErrInvalidCPF),
			errors.Is(err, customer.ErrInvalidRG),
			errors.Is(err, customer.ErrInvalidGender):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, customer.ErrCustomerNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, customer.ErrDuplicateName),
			errors.Is(err, customer.ErrRGMatchesCPF),
			errors.Is(err, customer.ErrConflict):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := toDTO(updated)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func toDTO(c *entities.Customer) dto.Customer {
	customerDTO := dto.Customer{
		ID:        c.ID,
		Name:      c.Name,
		CPF:       c.CPF,
		RG:        c.RG,
		Phone:     c.Phone,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
	}
	if c.Gender != nil {
		gender := c.Gender.String()
		customerDTO.Gender = &gender
	}
	return customerDTO
}
