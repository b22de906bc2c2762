package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// LookupResult is the public self-service view: customers matching the
// query that still hold pending parcels, with current accrual.
type LookupResult struct {
	Matches    []LookupMatch
	GrandTotal decimal.Decimal
}

type LookupMatch struct {
	CustomerID   int64
	CustomerName string
	Parcels      []LookupParcel
	Total        decimal.Decimal
}

type LookupParcel struct {
	ParcelID    int64
	Description string
	ArrivedAt   time.Time
	DaysInStock int64
	Accrual     decimal.Decimal
	Overdue     bool
}
