package report_get

import (
	"encoding/json"
	"net/http"
	"time"

	"encomendas/internal/dto"
	"encomendas/internal/service/report"
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
	query := r.URL.Query()
	ignorePeriod := query.Get("ignore_period") == "1" || query.Get("ignore_period") == "true"
	period := report.ResolvePeriod(query.Get("start"), query.Get("end"), ignorePeriod, time.Now())

	reportEntity, err := h.service.BuildReport(r.Context(), period)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.Report{
		IgnorePeriod: reportEntity.Period.IgnorePeriod,

		Revenue:        reportEntity.Revenue.StringFixed(2),
		Discounts:      reportEntity.Discounts.StringFixed(2),
		DeliveredCount: reportEntity.DeliveredCount,
		AverageTicket:  reportEntity.AverageTicket.StringFixed(2),
		ZeroCharged:    reportEntity.ZeroCharged,
		TopCustomers:   make([]dto.CustomerRevenue, len(reportEntity.TopCustomers)),

		ArrivalsCount: reportEntity.ArrivalsCount,

		AverageHandlingDays: reportEntity.AverageHandlingDays,
		PendingCount:        reportEntity.PendingCount,
		PendingBaseTotal:    reportEntity.PendingBaseTotal.StringFixed(2),
		StaleCritical:       reportEntity.StaleCritical,
		StaleAttention:      reportEntity.StaleAttention,
		IncompleteCustomers: reportEntity.IncompleteCustomers,

		TrendLabels: reportEntity.TrendLabels,
		TrendValues: make([]string, len(reportEntity.TrendValues)),
	}
	if !reportEntity.Period.IgnorePeriod {
		start := reportEntity.Period.Start
		end := reportEntity.Period.End
		response.PeriodStart = &start
		response.PeriodEnd = &end
	}
	for i, c := range reportEntity.TopCustomers {
		response.TopCustomers[i] = dto.CustomerRevenue{
			CustomerID:   c.CustomerID,
			CustomerName: c.CustomerName,
			Total:        c.Total.StringFixed(2),
			ParcelCount:  c.ParcelCount,
		}
	}
	for i, v := range reportEntity.TrendValues {
		response.TrendValues[i] = v.StringFixed(2)
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
