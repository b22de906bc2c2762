package storage_fee

import (
	"time"

	"github.com/shopspring/decimal"
)

// tierDays is the size of one accrual tier: every full 10 days in stock
// raise the multiplier by one.
const tierDays = 10

// StorageFeeFactory is the single implementation of the tiered storage
// fee rule. Parcel saves, settlement previews and the public lookup all
// go through it so the figures cannot drift apart.
type StorageFeeFactory struct{}

func New() *StorageFeeFactory {
	return &StorageFeeFactory{}
}

// DaysInStock returns the whole days elapsed between arrival and the
// reference time, floored at zero for back-dated entries.
func (f *StorageFeeFactory) DaysInStock(arrivedAt, ref time.Time) int64 {
	days := int64(ref.Sub(arrivedAt).Hours() / 24)
	if days < 0 {
		days = 0
	}
	return days
}

// Multiplier returns max(1, days/tierDays).
func (f *StorageFeeFactory) Multiplier(days int64) int64 {
	multiplier := days / tierDays
	if multiplier < 1 {
		multiplier = 1
	}
	return multiplier
}

// Accrual computes the fee owed for a parcel with the given base fee,
// arrival time and reference time (delivery time if known, now otherwise).
func (f *StorageFeeFactory) Accrual(baseFee decimal.Decimal, arrivedAt, ref time.Time) decimal.Decimal {
	days := f.DaysInStock(arrivedAt, ref)
	return baseFee.Mul(decimal.NewFromInt(f.Multiplier(days)))
}

// Overdue reports whether a parcel has been in stock long enough to enter
// the second tier.
func (f *StorageFeeFactory) Overdue(days int64) bool {
	return days >= tierDays
}
