package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ReportPeriod is the inclusive [Start, End] range the dashboard metrics
// are computed over. IgnorePeriod unbounds the range.
type ReportPeriod struct {
	Start        time.Time
	End          time.Time
	IgnorePeriod bool
}

type Report struct {
	Period ReportPeriod

	// Delivered within the period (by delivery timestamp).
	Revenue        decimal.Decimal
	Discounts      decimal.Decimal
	DeliveredCount int64
	AverageTicket  decimal.Decimal
	ZeroCharged    int64
	TopCustomers   []CustomerRevenue

	// Arrived within the period (by arrival timestamp).
	ArrivalsCount int64

	// Global figures, not period-scoped.
	AverageHandlingDays int64
	PendingCount        int64
	PendingBaseTotal    decimal.Decimal
	StaleCritical       int64
	StaleAttention      int64
	IncompleteCustomers int64

	// Trailing six calendar months, oldest first.
	TrendLabels []string
	TrendValues []decimal.Decimal
}

type CustomerRevenue struct {
	CustomerID   int64
	CustomerName string
	Total        decimal.Decimal
	ParcelCount  int64
}

// DeliveredStats aggregates parcels delivered within a period.
type DeliveredStats struct {
	Revenue        decimal.Decimal
	Discounts      decimal.Decimal
	DeliveredCount int64
	ZeroCharged    int64
}

// PendingSnapshot is the live pending-stock figure, discarded excluded.
type PendingSnapshot struct {
	Count     int64
	BaseTotal decimal.Decimal
}

// StaleCounts buckets pending parcels by time in stock.
type StaleCounts struct {
	Critical  int64
	Attention int64
}

// HomeSummary feeds the service banner: month-to-date revenue plus the
// pending stock snapshot.
type HomeSummary struct {
	MonthRevenue     decimal.Decimal
	PendingCount     int64
	PendingBaseTotal decimal.Decimal
}
