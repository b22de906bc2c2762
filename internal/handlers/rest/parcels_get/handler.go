package parcels_get

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"encomendas/internal/dto"
	"encomendas/internal/entities"
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
	view := parseView(r.URL.Query().Get("view"))

	number, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	page := h.policy.Resolve(number, size)

	parcelEntities, counts, err := h.service.GetParcels(r.Context(), view, page)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	response := dto.ParcelListResponse{
		Parcels: make([]dto.Parcel, len(parcelEntities)),
		Counts: dto.StatusCounts{
			Pending:   counts.Pending,
			Delivered: counts.Delivered,
			Total:     counts.Total,
		},
	}
	for i, p := range parcelEntities {
		response.Parcels[i] = toDTO(p)
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

// parseView accepts both the wire status values (PENDENTE, ENTREGUE,
// TODOS, LIXEIRA) and their english query aliases. Unknown values fall
// back to the pending listing in the service.
func parseView(raw string) entities.ParcelListView {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return entities.ViewPending
	case "delivered":
		return entities.ViewDelivered
	case "all":
		return entities.ViewAll
	case "trash":
		return entities.ViewTrash
	}
	return entities.ParcelListView(strings.ToUpper(raw))
}

func toDTO(p entities.Parcel) dto.Parcel {
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
