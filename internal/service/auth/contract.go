//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"storefront/internal/entities"
)

type Repository interface {
	CreateUser(ctx context.Context, user entities.User) (int64, error)
	GetUserByEmail(ctx context.Context, email string) (*entities.User, error)
	UpdatePassword(ctx context.Context, email, passwordHash string) error

	SaveOTP(ctx context.Context, otp entities.OTPCode) error
	GetOTP(ctx context.Context, email string) (*entities.OTPCode, error)
	MarkOTPVerified(ctx context.Context, email string) error
	DeleteOTP(ctx context.Context, email string) error
	DeleteExpiredOTPs(ctx context.Context) (int64, error)
}

type TokenIssuer interface {
	Issue(userID int64, role string) (string, error)
}

// Mailer доставляет OTP-код на почту. Транспорт почты — внешний сервис;
// для локального окружения есть лог-адаптер.
type Mailer interface {
	SendOTP(ctx context.Context, email, code string) error
}
