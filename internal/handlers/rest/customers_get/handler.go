package customers_get

import (
	"encoding/json"
	"net/http"
	"strconv"

	"encomendas/internal/dto"
	"encomendas/internal/pkg/pagination"
	"encomendas/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
	policy  pagination.Policy
}

func New(log handlerLogger, service Service, policy pagination.Policy) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
		policy:  policy,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	number, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	page := h.policy.Resolve(number, size)

	customerEntities, err := h.service.GetCustomers(r.Context(), page)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	customerDTOs := make([]dto.Customer, len(customerEntities))
	for i, c := range customerEntities {
		customerDTOs[i] = dto.Customer{
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
			customerDTOs[i].Gender = &gender
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(customerDTOs)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
