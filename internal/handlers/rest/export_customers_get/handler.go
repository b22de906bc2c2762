package export_customers_get

import (
	"net/http"

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
	document, err := h.service.CustomersXML(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="clientes.xml"`)
	w.WriteHeader(http.StatusOK)
	_, err = w.Write(document)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("write XML response")
	}
}
