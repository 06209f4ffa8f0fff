package otp_cleanup

import (
	"context"
	"time"

	"storefront/pkg/logger"
)

type Service interface {
	CleanupExpiredOTPs(ctx context.Context) (int64, error)
}

type OTPCleanup struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewOTPCleanup(log logger.Logger, service Service, interval time.Duration) *OTPCleanup {
	return &OTPCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (o *OTPCleanup) TTL() time.Duration {
	return o.interval
}

func (o *OTPCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	rowsAffected, err := o.service.CleanupExpiredOTPs(ctxWithTimeout)

	if rowsAffected > 0 {
		o.log.With(
			logger.NewField("expired_codes", rowsAffected),
		).Info("otp cleanup")
	}

	return err
}

func (o *OTPCleanup) Info() string {
	return "otp cleanup"
}
