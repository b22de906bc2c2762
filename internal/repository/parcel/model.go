package parcel

import (
	"time"

	"github.com/shopspring/decimal"
)

type ParcelDB struct {
	ID          int64
	CustomerID  int64
	Description string
	Note        *string
	ArrivedAt   time.Time
	DeliveredAt *time.Time
	BaseFee     decimal.Decimal
	ComputedFee *decimal.Decimal
	ChargedFee  *decimal.Decimal
	Status      string
	Discarded   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ParcelWithCustomerDB struct {
	ParcelDB
	CustomerName string
}
