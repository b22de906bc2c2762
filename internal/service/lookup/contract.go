//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=lookup_test
package lookup

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"encomendas/internal/entities"
	"encomendas/internal/pkg/factory/lookup_match"
)

type Repository interface {
	// FindCustomers resolves the query terms under the given matching
	// mode, name order. Customers without pending parcels may be
	// returned; the service filters them out.
	FindCustomers(ctx context.Context, mode lookup_match.Mode, raw, cleaned string) ([]entities.Customer, error)
	// PendingParcels returns the customer's pending non-discarded
	// parcels, oldest arrival first.
	PendingParcels(ctx context.Context, customerID int64) ([]entities.Parcel, error)
}

type StorageFeeFactory interface {
	DaysInStock(arrivedAt, ref time.Time) int64
	Accrual(baseFee decimal.Decimal, arrivedAt, ref time.Time) decimal.Decimal
	Overdue(days int64) bool
}

type MatcherFactory interface {
	Mode() lookup_match.Mode
	Terms(query string) (raw, cleaned string)
}
