package cron

import (
	"context"
	"time"

	bookingRepo "barberbook/database/repository/booking"
	"barberbook/models"
	"barberbook/utils"

	"go.uber.org/zap"
)

// StartBookingReconciler runs the lifecycle sweep on a fixed interval until
// the context is cancelled. Per-tick failures are logged and retried on the
// next tick; the reconciler never takes the process down.
func StartBookingReconciler(ctx context.Context, repo bookingRepo.BookingRepository, interval time.Duration) {
	logger := utils.GetLogger()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	logger.Info("booking reconciler started", zap.Duration("interval", interval))
	for {
		select {
		case <-ctx.Done():
			logger.Info("booking reconciler shutdown signal received")
			return
		case <-ticker.C:
			completed, err := ReconcileOnce(repo)
			if err != nil {
				logger.Warn("booking reconciliation failed, will retry next tick", zap.Error(err))
				continue
			}
			if completed > 0 {
				logger.Info("bookings reconciled to completed", zap.Int64("count", completed))
			}
		}
	}
}

// ReconcileOnce transitions every booking whose end has passed and whose
// status is not terminal to completed, in a single batch. Running it again
// with no newly-eligible rows is a no-op.
func ReconcileOnce(repo bookingRepo.BookingRepository) (int64, error) {
	nowISO := time.Now().Format(models.DateTimeLayout)
	return repo.CompleteExpired(nowISO)
}
