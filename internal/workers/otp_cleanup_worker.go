package workers

import (
	"context"
	"log/slog"
	"time"

	"inforreel_backend/internal/logger"
)

// otpStore - часть AccountRepository, нужная воркеру
type otpStore interface {
	ClearExpiredOTPs(ctx context.Context, now time.Time) (int64, error)
}

type OTPCleanupWorker struct {
	accounts otpStore
	interval time.Duration
	now      func() time.Time
	log      *slog.Logger
}

func NewOTPCleanupWorker(accounts otpStore, interval time.Duration) *OTPCleanupWorker {
	return &OTPCleanupWorker{
		accounts: accounts,
		interval: interval,
		now:      time.Now,
		log:      logger.With("worker", "otp_cleanup"),
	}
}

// Start запускает периодическую очистку истекших кодов.
// Нулевой интервал отключает воркер.
func (w *OTPCleanupWorker) Start(ctx context.Context) {
	if w.interval <= 0 {
		w.log.Info("OTP cleanup worker disabled")
		return
	}
	go w.run(ctx)
}

func (w *OTPCleanupWorker) run(ctx context.Context) {
	w.log.Info("OTP cleanup worker started", "interval", w.interval.String())
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info("OTP cleanup worker stopped")
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep - один проход очистки
func (w *OTPCleanupWorker) Sweep(ctx context.Context) int64 {
	cleared, err := w.accounts.ClearExpiredOTPs(ctx, w.now())
	if err != nil {
		w.log.ErrorContext(ctx, "Error clearing expired OTPs", "error", err)
		return 0
	}
	if cleared > 0 {
		w.log.InfoContext(ctx, "Cleared expired OTPs", "count", cleared)
	}
	return cleared
}
