package entities

import "time"

// AuditEntry is an append-only record of a staff action.
type AuditEntry struct {
	ID         int64
	Actor      string
	TargetType string
	TargetID   int64
	Action     string
	Message    string
	CreatedAt  time.Time
}

const (
	AuditTargetParcel = "parcel"

	AuditActionSettle = "settle"
)
