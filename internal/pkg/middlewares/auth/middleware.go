package auth

import (
	"context"
	"net/http"
	"strings"

	"storefront/pkg/authtoken"
	"storefront/pkg/logger"
)

type contextKey string

const claimsKey contextKey = "auth_claims"

// Middleware проверяет Bearer-токен и кладет клеймы в контекст запроса.
func Middleware(log handlerLogger, parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, found := strings.CutPrefix(header, "Bearer ")
			if !found || token == "" {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := parser.Parse(token)
			if err != nil {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Warn("token rejected")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin пускает дальше только токены с ролью admin.
// Вешается после Middleware.
func RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims, ok := ClaimsFromContext(r.Context())
		if !ok || claims.Role != authtoken.RoleAdmin {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func ClaimsFromContext(ctx context.Context) (*authtoken.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*authtoken.Claims)
	return claims, ok
}

// ContextWithClaims используется в тестах хендлеров.
func ContextWithClaims(ctx context.Context, claims *authtoken.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}
