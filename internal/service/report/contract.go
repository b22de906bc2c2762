//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=report_test
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"encomendas/internal/entities"
)

type Repository interface {
	DeliveredStats(ctx context.Context, period entities.ReportPeriod) (*entities.DeliveredStats, error)
	TopCustomers(ctx context.Context, period entities.ReportPeriod, limit uint64) ([]entities.CustomerRevenue, error)
	ArrivalsCount(ctx context.Context, period entities.ReportPeriod) (int64, error)
	AverageHandlingDays(ctx context.Context) (int64, error)
	PendingSnapshot(ctx context.Context) (*entities.PendingSnapshot, error)
	StaleCounts(ctx context.Context, attentionBefore, criticalBefore time.Time) (*entities.StaleCounts, error)
	IncompleteCustomersCount(ctx context.Context) (int64, error)
	RevenueBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error)
}
