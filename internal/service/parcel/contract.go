//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=parcel_test
package parcel

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"encomendas/internal/entities"
	"encomendas/internal/pkg/pagination"
)

type Repository interface {
	Create(ctx context.Context, parcelEntity entities.Parcel) (*entities.Parcel, error)
	Save(ctx context.Context, parcelEntity entities.Parcel) (*entities.Parcel, error)
	GetByID(ctx context.Context, id int64) (*entities.Parcel, error)
	GetByIDsWithCustomer(ctx context.Context, ids []int64) ([]entities.ParcelWithCustomer, error)
	GetAll(ctx context.Context, view entities.ParcelListView, page pagination.Page) ([]entities.Parcel, error)
	CountByStatus(ctx context.Context) (*entities.StatusCounts, error)
}

type AuditRepository interface {
	Append(ctx context.Context, entry entities.AuditEntry) (int64, error)
}

type StorageFeeFactory interface {
	DaysInStock(arrivedAt, ref time.Time) int64
	Multiplier(days int64) int64
	Accrual(baseFee decimal.Decimal, arrivedAt, ref time.Time) decimal.Decimal
	Overdue(days int64) bool
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
