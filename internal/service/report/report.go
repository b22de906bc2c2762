package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"encomendas/internal/entities"
)

const (
	dateLayout        = "2006-01-02"
	defaultPeriodDays = 30

	topCustomersLimit = 5
	trendMonths       = 6

	// Age cutoffs for the stale-stock alert buckets.
	StaleAttentionDays = 30
	StaleCriticalDays  = 120
)

type Report struct {
	repository Repository
}

func New(repository Repository) *Report {
	return &Report{repository: repository}
}

// ResolvePeriod turns the raw query-string dates into a concrete period.
// Malformed or missing dates fall back to the last defaultPeriodDays
// through today, never an error: the dashboard always renders.
func ResolvePeriod(rawStart, rawEnd string, ignorePeriod bool, now time.Time) entities.ReportPeriod {
	if ignorePeriod {
		return entities.ReportPeriod{IgnorePeriod: true}
	}

	endDay := startOfDay(now.UTC())
	if parsed, err := time.Parse(dateLayout, rawEnd); err == nil {
		endDay = parsed
	}

	start := endDay.AddDate(0, 0, -defaultPeriodDays)
	if parsed, err := time.Parse(dateLayout, rawStart); err == nil && !parsed.After(endDay) {
		start = parsed
	}

	return entities.ReportPeriod{
		Start: start,
		End:   endDay.Add(24*time.Hour - time.Nanosecond),
	}
}

func (s *Report) BuildReport(ctx context.Context, period entities.ReportPeriod) (*entities.Report, error) {
	now := time.Now().UTC()
	report := entities.Report{Period: period}

	stats, err := s.repository.DeliveredStats(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("delivered stats: %w", err)
	}
	report.Revenue = stats.Revenue
	report.Discounts = stats.Discounts
	report.DeliveredCount = stats.DeliveredCount
	report.ZeroCharged = stats.ZeroCharged
	if stats.DeliveredCount > 0 {
		report.AverageTicket = stats.Revenue.Div(decimal.NewFromInt(stats.DeliveredCount)).Round(2)
	}

	report.TopCustomers, err = s.repository.TopCustomers(ctx, period, topCustomersLimit)
	if err != nil {
		return nil, fmt.Errorf("top customers: %w", err)
	}

	report.ArrivalsCount, err = s.repository.ArrivalsCount(ctx, period)
	if err != nil {
		return nil, fmt.Errorf("arrivals count: %w", err)
	}

	report.AverageHandlingDays, err = s.repository.AverageHandlingDays(ctx)
	if err != nil {
		return nil, fmt.Errorf("average handling days: %w", err)
	}

	pending, err := s.repository.PendingSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("pending snapshot: %w", err)
	}
	report.PendingCount = pending.Count
	report.PendingBaseTotal = pending.BaseTotal

	stale, err := s.repository.StaleCounts(ctx,
		now.AddDate(0, 0, -StaleAttentionDays),
		now.AddDate(0, 0, -StaleCriticalDays),
	)
	if err != nil {
		return nil, fmt.Errorf("stale counts: %w", err)
	}
	report.StaleCritical = stale.Critical
	report.StaleAttention = stale.Attention

	report.IncompleteCustomers, err = s.repository.IncompleteCustomersCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("incomplete customers count: %w", err)
	}

	report.TrendLabels, report.TrendValues, err = s.revenueTrend(ctx, now)
	if err != nil {
		return nil, err
	}

	return &report, nil
}

// HomeSummary is the lightweight figure set for the service banner.
func (s *Report) HomeSummary(ctx context.Context) (*entities.HomeSummary, error) {
	now := time.Now().UTC()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	revenue, err := s.repository.RevenueBetween(ctx, monthStart, monthStart.AddDate(0, 1, 0))
	if err != nil {
		return nil, fmt.Errorf("month revenue: %w", err)
	}

	pending, err := s.repository.PendingSnapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("pending snapshot: %w", err)
	}

	return &entities.HomeSummary{
		MonthRevenue:     revenue,
		PendingCount:     pending.Count,
		PendingBaseTotal: pending.BaseTotal,
	}, nil
}

// StaleParcelCounts sizes the attention and critical stale-stock buckets
// as of now. The dashboard and the metrics task share this view.
func (s *Report) StaleParcelCounts(ctx context.Context) (*entities.StaleCounts, error) {
	now := time.Now().UTC()

	stale, err := s.repository.StaleCounts(ctx,
		now.AddDate(0, 0, -StaleAttentionDays),
		now.AddDate(0, 0, -StaleCriticalDays),
	)
	if err != nil {
		return nil, fmt.Errorf("stale counts: %w", err)
	}
	return stale, nil
}

// revenueTrend sums charged fees per calendar month for the trailing
// trendMonths months, the current one included, oldest first.
func (s *Report) revenueTrend(ctx context.Context, now time.Time) ([]string, []decimal.Decimal, error) {
	currentMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	labels := make([]string, 0, trendMonths)
	values := make([]decimal.Decimal, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		monthStart := currentMonth.AddDate(0, -i, 0)
		monthEnd := monthStart.AddDate(0, 1, 0)

		revenue, err := s.repository.RevenueBetween(ctx, monthStart, monthEnd)
		if err != nil {
			return nil, nil, fmt.Errorf("revenue for %s: %w", monthStart.Format("2006-01"), err)
		}

		labels = append(labels, monthStart.Format("Jan/2006"))
		values = append(values, revenue)
	}

	return labels, values, nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
