package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type Parcel struct {
	ID          int64
	CustomerID  int64
	Description string
	Note        *string
	ArrivedAt   time.Time
	DeliveredAt *time.Time
	BaseFee     decimal.Decimal
	ComputedFee *decimal.Decimal
	ChargedFee  *decimal.Decimal
	Status      ParcelStatusType
	Discarded   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Status values keep the wire form of the original system.
type ParcelStatusType string

const (
	ParcelPending   ParcelStatusType = "PENDENTE"
	ParcelDelivered ParcelStatusType = "ENTREGUE"
)

const DefaultParcelStatus = ParcelPending

func (s ParcelStatusType) String() string {
	return string(s)
}

type ParcelModify struct {
	ID          *int64
	CustomerID  *int64
	Description *string
	Note        *string
	ArrivedAt   *time.Time
	DeliveredAt *time.Time
	BaseFee     *decimal.Decimal
	ComputedFee *decimal.Decimal
	ChargedFee  *decimal.Decimal
	Status      *ParcelStatusType
	Discarded   *bool
}

// ParcelListView selects which slice of the parcel table a listing shows.
type ParcelListView string

const (
	ViewPending   ParcelListView = "PENDENTE"
	ViewDelivered ParcelListView = "ENTREGUE"
	ViewAll       ParcelListView = "TODOS"
	ViewTrash     ParcelListView = "LIXEIRA"
)

// StatusCounts mirrors the listing facets: how many parcels sit in each
// status bucket, discarded ones excluded.
type StatusCounts struct {
	Pending   int64
	Delivered int64
	Total     int64
}

// ParcelWithCustomer joins a parcel with its owner's name for views that
// group or label parcels by customer.
type ParcelWithCustomer struct {
	Parcel
	CustomerName string
}
