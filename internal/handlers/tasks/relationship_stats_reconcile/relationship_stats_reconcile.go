package relationship_stats_reconcile

import (
	"context"
	"time"

	"github.com/bidbinh/vnss-tms-sub009/pkg/logger"
)

type Service interface {
	ReconcileStats(ctx context.Context) (int64, error)
}

type StatsReconcile struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewStatsReconcile(log logger.Logger, service Service, interval time.Duration) *StatsReconcile {
	return &StatsReconcile{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (s *StatsReconcile) TTL() time.Duration {
	return s.interval
}

func (s *StatsReconcile) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	rowsAffected, err := s.service.ReconcileStats(ctxWithTimeout)

	if rowsAffected > 0 {
		s.log.With(
			logger.NewField("corrected_edges", rowsAffected),
		).Info("relationship stats reconcile")
	}

	return err
}

func (s *StatsReconcile) Info() string {
	return "relationship stats reconcile"
}
