package home_get

import (
	"encoding/json"
	"net/http"

	"encomendas/internal/dto"
	"encomendas/pkg/logger"
)

const serviceName = "encomendas"

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
	summary, err := h.service.HomeSummary(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.HomeResponse{
		Service:          serviceName,
		MonthRevenue:     summary.MonthRevenue.StringFixed(2),
		PendingParcels:   summary.PendingCount,
		PendingBaseTotal: summary.PendingBaseTotal.StringFixed(2),
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
