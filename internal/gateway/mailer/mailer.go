package mailer

import (
	"context"

	"storefront/pkg/logger"
)

// LogMailer пишет OTP-код в лог вместо отправки письма.
// Для locked-окружений и локальной разработки, внешнего SMTP тут нет.
type LogMailer struct {
	log logger.Logger
}

func NewLogMailer(log logger.Logger) *LogMailer {
	return &LogMailer{log: log}
}

func (m *LogMailer) SendOTP(ctx context.Context, email, code string) error {
	m.log.With(
		logger.NewField("email", email),
		logger.NewField("code", code),
	).Info("OTP issued")
	return nil
}
