package stale_alerts

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"encomendas/internal/entities"
	"encomendas/pkg/logger"
)

var staleParcels = promauto.NewGaugeVec(prometheus.GaugeOpts{
	Name: "encomendas_stale_pending_parcels",
	Help: "Pending parcels older than the attention and critical cutoffs.",
}, []string{"bucket"})

type Service interface {
	StaleParcelCounts(ctx context.Context) (*entities.StaleCounts, error)
}

// StaleAlerts periodically republishes the stale-stock bucket sizes as
// gauges, so alerting does not depend on anyone opening the dashboard.
type StaleAlerts struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewStaleAlerts(log logger.Logger, service Service, interval time.Duration) *StaleAlerts {
	return &StaleAlerts{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *StaleAlerts) TTL() time.Duration {
	return s.interval
}

func (s *StaleAlerts) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	counts, err := s.service.StaleParcelCounts(ctxWithTimeout)
	if err != nil {
		return err
	}

	staleParcels.WithLabelValues("attention").Set(float64(counts.Attention))
	staleParcels.WithLabelValues("critical").Set(float64(counts.Critical))

	if counts.Critical > 0 {
		s.log.With(
			logger.NewField("critical", counts.Critical),
			logger.NewField("attention", counts.Attention),
		).Warn("stale parcels past critical cutoff")
	}

	return nil
}

func (s *StaleAlerts) Info() string {
	return "stale parcel alerts"
}
