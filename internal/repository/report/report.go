package report

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"encomendas/internal/entities"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Querier interface {
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}

// Repository runs the dashboard aggregations straight in SQL. Nothing
// here is row-by-row: the report stays cheap even with years of data.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) DeliveredStats(ctx context.Context, period entities.ReportPeriod) (*entities.DeliveredStats, error) {
	builder := qb.
		Select(
			"COALESCE(SUM(charged_fee), 0)",
			"COALESCE(SUM(GREATEST(COALESCE(computed_fee, 0) - COALESCE(charged_fee, 0), 0)), 0)",
			"COUNT(*)",
			"COUNT(*) FILTER (WHERE charged_fee = 0 OR charged_fee IS NULL)",
		).
		From("parcels").
		Where(sq.Eq{"status": entities.ParcelDelivered.String(), "discarded": false})
	builder = withDeliveredPeriod(builder, period)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository delivered stats error: %w", err)
	}

	var stats entities.DeliveredStats
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(&stats.Revenue, &stats.Discounts, &stats.DeliveredCount, &stats.ZeroCharged)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository delivered stats error: %w", err)
	}

	return &stats, nil
}

func (r *Repository) TopCustomers(ctx context.Context, period entities.ReportPeriod, limit uint64) ([]entities.CustomerRevenue, error) {
	builder := qb.
		Select("c.id", "c.name", "COALESCE(SUM(p.charged_fee), 0) AS total", "COUNT(p.id)").
		From("parcels p").
		Join("customers c ON c.id = p.customer_id").
		Where(sq.Eq{"p.status": entities.ParcelDelivered.String(), "p.discarded": false}).
		GroupBy("c.id", "c.name").
		OrderBy("total DESC", "c.name").
		Limit(limit)
	builder = withDeliveredPeriod(builder, period)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository top customers error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository top customers error: %w", err)
	}
	defer rows.Close()

	top := make([]entities.CustomerRevenue, 0, limit)
	for rows.Next() {
		var row entities.CustomerRevenue
		if err := rows.Scan(&row.CustomerID, &row.CustomerName, &row.Total, &row.ParcelCount); err != nil {
			return nil, fmt.Errorf("unexpected report repository top customers error: %w", err)
		}
		top = append(top, row)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository top customers error: %w", err)
	}

	return top, nil
}

func (r *Repository) ArrivalsCount(ctx context.Context, period entities.ReportPeriod) (int64, error) {
	builder := qb.
		Select("COUNT(*)").
		From("parcels").
		Where(sq.Eq{"discarded": false})
	if !period.IgnorePeriod {
		builder = builder.Where(sq.GtOrEq{"arrived_at": period.Start}).
			Where(sq.LtOrEq{"arrived_at": period.End})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("unexpected report repository arrivals count error: %w", err)
	}

	var count int64
	err = r.querier.QueryRow(ctx, query, args...).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected report repository arrivals count error: %w", err)
	}

	return count, nil
}

func (r *Repository) AverageHandlingDays(ctx context.Context) (int64, error) {
	query := `
		SELECT COALESCE(
			ROUND(AVG(EXTRACT(EPOCH FROM (delivered_at - arrived_at)) / 86400)),
			0
		)::bigint
		FROM parcels
		WHERE status = 'ENTREGUE' AND NOT discarded AND delivered_at IS NOT NULL`

	var days int64
	err := r.querier.QueryRow(ctx, query).Scan(&days)
	if err != nil {
		return 0, fmt.Errorf("unexpected report repository average handling days error: %w", err)
	}

	return days, nil
}

func (r *Repository) PendingSnapshot(ctx context.Context) (*entities.PendingSnapshot, error) {
	query := `
		SELECT COUNT(*), COALESCE(SUM(base_fee), 0)
		FROM parcels
		WHERE status = 'PENDENTE' AND NOT discarded`

	var snapshot entities.PendingSnapshot
	err := r.querier.QueryRow(ctx, query).Scan(&snapshot.Count, &snapshot.BaseTotal)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository pending snapshot error: %w", err)
	}

	return &snapshot, nil
}

func (r *Repository) StaleCounts(ctx context.Context, attentionBefore, criticalBefore time.Time) (*entities.StaleCounts, error) {
	// Cutoffs are inclusive: a parcel sitting exactly at the boundary
	// already belongs to the worse bucket.
	query := `
		SELECT
			COUNT(*) FILTER (WHERE arrived_at <= $2),
			COUNT(*) FILTER (WHERE arrived_at <= $1 AND arrived_at > $2)
		FROM parcels
		WHERE status = 'PENDENTE' AND NOT discarded`

	var counts entities.StaleCounts
	err := r.querier.QueryRow(ctx, query, attentionBefore, criticalBefore).
		Scan(&counts.Critical, &counts.Attention)
	if err != nil {
		return nil, fmt.Errorf("unexpected report repository stale counts error: %w", err)
	}

	return &counts, nil
}

func (r *Repository) IncompleteCustomersCount(ctx context.Context) (int64, error) {
	query := `
		SELECT COUNT(*)
		FROM customers
		WHERE phone IS NULL OR phone = ''`

	var count int64
	err := r.querier.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("unexpected report repository incomplete customers error: %w", err)
	}

	return count, nil
}

func (r *Repository) RevenueBetween(ctx context.Context, start, end time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(charged_fee), 0)
		FROM parcels
		WHERE status = 'ENTREGUE' AND NOT discarded
		  AND delivered_at >= $1 AND delivered_at < $2`

	var revenue decimal.Decimal
	err := r.querier.QueryRow(ctx, query, start, end).Scan(&revenue)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("unexpected report repository revenue between error: %w", err)
	}

	return revenue, nil
}

func withDeliveredPeriod(builder sq.SelectBuilder, period entities.ReportPeriod) sq.SelectBuilder {
	if period.IgnorePeriod {
		return builder
	}
	return builder.
		Where(sq.GtOrEq{"delivered_at": period.Start}).
		Where(sq.LtOrEq{"delivered_at": period.End})
}
