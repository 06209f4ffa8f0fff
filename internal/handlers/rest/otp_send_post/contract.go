//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=otp_send_post_test
package otp_send_post

import (
	"context"

	"storefront/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	SendOTP(ctx context.Context, email string) error
}
