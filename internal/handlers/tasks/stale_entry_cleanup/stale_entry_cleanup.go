package stale_entry_cleanup

import (
	"context"
	"time"

	"dispatch/pkg/logger"
)

type Service interface {
	CleanupStaleRequests(ctx context.Context, maxAge time.Duration) (int64, error)
}

// StaleEntryCleanup отменяет заявки, которые так и не были оплачены
// и не были забраны компанией за отведенное время.
type StaleEntryCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
	maxAge   time.Duration
}

func NewStaleEntryCleanup(log logger.Logger, service Service, interval, maxAge time.Duration) *StaleEntryCleanup {
	return &StaleEntryCleanup{
		log:      log,
		service:  service,
		interval: interval,
		maxAge:   maxAge,
	}
}

func (c *StaleEntryCleanup) TTL() time.Duration {
	return c.interval
}

func (c *StaleEntryCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	rowsAffected, err := c.service.CleanupStaleRequests(ctxWithTimeout, c.maxAge)

	if rowsAffected > 0 {
		c.log.With(
			logger.NewField("cancelled_entries", rowsAffected),
		).Info("stale entry cleanup")
	}

	return err
}

func (c *StaleEntryCleanup) Info() string {
	return "stale entry cleanup"
}
