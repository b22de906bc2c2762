// Package dto holds the JSON request and response shapes of the REST
// surface. Money travels as fixed-point strings ("10.00"), timestamps
// as RFC 3339.
package dto

import "time"

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type HomeResponse struct {
	Service          string `json:"service"`
	MonthRevenue     string `json:"month_revenue"`
	PendingParcels   int64  `json:"pending_parcels"`
	PendingBaseTotal string `json:"pending_base_total"`
}

type CustomerCreate struct {
	Name   string  `json:"name"`
	CPF    *string `json:"cpf,omitempty"`
	RG     *string `json:"rg,omitempty"`
	Gender *string `json:"gender,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Email  *string `json:"email,omitempty"`
}

type CustomerCreateResponse struct {
	ID int64 `json:"id"`
}

type CustomerUpdate struct {
	ID     int64   `json:"id"`
	Name   *string `json:"name,omitempty"`
	CPF    *string `json:"cpf,omitempty"`
	RG     *string `json:"rg,omitempty"`
	Gender *string `json:"gender,omitempty"`
	Phone  *string `json:"phone,omitempty"`
	Email  *string `json:"email,omitempty"`
}

type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CPF       *string   `json:"cpf,omitempty"`
	RG        *string   `json:"rg,omitempty"`
	Gender    *string   `json:"gender,omitempty"`
	Phone     *string   `json:"phone,omitempty"`
	Email     *string   `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ParcelCreate struct {
	CustomerID  int64      `json:"customer_id"`
	Description string     `json:"description"`
	Note        *string    `json:"note,omitempty"`
	ArrivedAt   time.Time  `json:"arrived_at"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	BaseFee     *string    `json:"base_fee,omitempty"`
	Status      *string    `json:"status,omitempty"`
}

type ParcelUpdate struct {
	ID          int64      `json:"id"`
	CustomerID  *int64     `json:"customer_id,omitempty"`
	Description *string    `json:"description,omitempty"`
	Note        *string    `json:"note,omitempty"`
	ArrivedAt   *time.Time `json:"arrived_at,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	BaseFee     *string    `json:"base_fee,omitempty"`
	ChargedFee  *string    `json:"charged_fee,omitempty"`
	Status      *string    `json:"status,omitempty"`
	Discarded   *bool      `json:"discarded,omitempty"`
}

type Parcel struct {
	ID          int64      `json:"id"`
	CustomerID  int64      `json:"customer_id"`
	Description string     `json:"description"`
	Note        *string    `json:"note,omitempty"`
	ArrivedAt   time.Time  `json:"arrived_at"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty"`
	BaseFee     string     `json:"base_fee"`
	ComputedFee *string    `json:"computed_fee,omitempty"`
	ChargedFee  *string    `json:"charged_fee,omitempty"`
	Status      string     `json:"status"`
	Discarded   bool       `json:"discarded"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type StatusCounts struct {
	Pending   int64 `json:"pending"`
	Delivered int64 `json:"delivered"`
	Total     int64 `json:"total"`
}

type ParcelListResponse struct {
	Parcels []Parcel     `json:"parcels"`
	Counts  StatusCounts `json:"counts"`
}

type SettlementPreviewRequest struct {
	ParcelIDs []int64 `json:"parcel_ids"`
}

type SettlementItem struct {
	ParcelID     int64     `json:"parcel_id"`
	Description  string    `json:"description"`
	ArrivedAt    time.Time `json:"arrived_at"`
	Status       string    `json:"status"`
	DaysInStock  int64     `json:"days_in_stock"`
	Multiplier   int64     `json:"multiplier"`
	BaseFee      string    `json:"base_fee"`
	SuggestedFee string    `json:"suggested_fee"`
	Overdue      bool      `json:"overdue"`
}

type SettlementGroup struct {
	CustomerID     int64            `json:"customer_id"`
	CustomerName   string           `json:"customer_name"`
	Items          []SettlementItem `json:"items"`
	SuggestedTotal string           `json:"suggested_total"`
}

type SettlementPreviewResponse struct {
	Groups       []SettlementGroup `json:"groups"`
	HasDuplicate bool              `json:"has_duplicate"`
	GeneratedAt  time.Time         `json:"generated_at"`
}

type SettlementCommitRow struct {
	ParcelID int64  `json:"parcel_id"`
	Amount   string `json:"amount"`
}

type SettlementCommitRequest struct {
	Actor string                `json:"actor"`
	Rows  []SettlementCommitRow `json:"rows"`
}

type SettlementCommitResponse struct {
	Settled   int64 `json:"settled"`
	Errors    int64 `json:"errors"`
	Conflicts int64 `json:"conflicts"`
}

type CustomerRevenue struct {
	CustomerID   int64  `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	Total        string `json:"total"`
	ParcelCount  int64  `json:"parcel_count"`
}

type Report struct {
	PeriodStart  *time.Time `json:"period_start,omitempty"`
	PeriodEnd    *time.Time `json:"period_end,omitempty"`
	IgnorePeriod bool       `json:"ignore_period"`

	Revenue        string            `json:"revenue"`
	Discounts      string            `json:"discounts"`
	DeliveredCount int64             `json:"delivered_count"`
	AverageTicket  string            `json:"average_ticket"`
	ZeroCharged    int64             `json:"zero_charged"`
	TopCustomers   []CustomerRevenue `json:"top_customers"`

	ArrivalsCount int64 `json:"arrivals_count"`

	AverageHandlingDays int64  `json:"average_handling_days"`
	PendingCount        int64  `json:"pending_count"`
	PendingBaseTotal    string `json:"pending_base_total"`
	StaleCritical       int64  `json:"stale_critical"`
	StaleAttention      int64  `json:"stale_attention"`
	IncompleteCustomers int64  `json:"incomplete_customers"`

	TrendLabels []string `json:"trend_labels"`
	TrendValues []string `json:"trend_values"`
}

type LookupParcel struct {
	ParcelID    int64     `json:"parcel_id"`
	Description string    `json:"description"`
	ArrivedAt   time.Time `json:"arrived_at"`
	DaysInStock int64     `json:"days_in_stock"`
	Accrual     string    `json:"accrual"`
	Overdue     bool      `json:"overdue"`
}

type LookupMatch struct {
	CustomerID   int64          `json:"customer_id"`
	CustomerName string         `json:"customer_name"`
	Parcels      []LookupParcel `json:"parcels"`
	Total        string         `json:"total"`
}

type LookupResponse struct {
	Matches    []LookupMatch `json:"matches"`
	GrandTotal string        `json:"grand_total"`
}
