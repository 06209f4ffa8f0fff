//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=signup_post_test
package signup_post

import (
	"context"

	"storefront/internal/service/auth"
	"storefront/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	Signup(ctx context.Context, name, email, password, phone string) (*auth.Session, error)
}
