package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettlementPreview is the read-only first phase of the bulk settlement
// workflow: the selected parcels grouped by customer with suggested fees.
type SettlementPreview struct {
	Groups       []SettlementGroup
	HasDuplicate bool
	GeneratedAt  time.Time
}

type SettlementGroup struct {
	CustomerID     int64
	CustomerName   string
	Items          []SettlementItem
	SuggestedTotal decimal.Decimal
}

type SettlementItem struct {
	ParcelID     int64
	Description  string
	ArrivedAt    time.Time
	Status       ParcelStatusType
	DaysInStock  int64
	Multiplier   int64
	BaseFee      decimal.Decimal
	SuggestedFee decimal.Decimal
	Overdue      bool
}

// SettlementRow is one caller-supplied charged amount for a parcel.
// Amount is the raw form input and is sanitized during commit.
type SettlementRow struct {
	ParcelID int64
	Amount   string
}

// SettlementResult summarizes a commit batch.
type SettlementResult struct {
	Settled   int64
	Errors    int64
	Conflicts int64
}
