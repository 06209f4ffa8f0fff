package auth

import (
	"storefront/pkg/authtoken"
	"storefront/pkg/logger"
)

type TokenParser interface {
	Parse(tokenString string) (*authtoken.Claims, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
