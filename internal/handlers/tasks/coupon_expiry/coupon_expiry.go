package coupon_expiry

import (
	"context"
	"time"

	"storefront/pkg/logger"
)

type Service interface {
	DeactivateExpired(ctx context.Context) (int64, error)
}

type CouponExpiry struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewCouponExpiry(log logger.Logger, service Service, interval time.Duration) *CouponExpiry {
	return &CouponExpiry{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (c *CouponExpiry) TTL() time.Duration {
	return c.interval
}

func (c *CouponExpiry) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, c.interval)
	defer cancel()

	rowsAffected, err := c.service.DeactivateExpired(ctxWithTimeout)

	if rowsAffected > 0 {
		c.log.With(
			logger.NewField("deactivated_coupons", rowsAffected),
		).Info("coupon expiry sweep")
	}

	return err
}

func (c *CouponExpiry) Info() string {
	return "coupon expiry sweep"
}
