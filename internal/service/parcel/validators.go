package parcel

import (
	"strings"

	"encomendas/internal/entities"
)

func isValidDescription(description string) bool {
	return strings.TrimSpace(description) != ""
}

func isValidStatus(status entities.ParcelStatusType) bool {
	switch status {
	case entities.ParcelPending, entities.ParcelDelivered:
		return true
	default:
		return false
	}
}
