package middlewares

import (
	"context"
	"net/http"

	"github.com/skuznetsov2019/gw-auth-service/internal/logger"
)

// Tokener is the minimal token interface the auth middleware needs.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetSubject(ctx context.Context, tokenString string) (string, error)
}

// AuthMiddleware rejects requests without a valid bearer token and
// stores the token subject (the username) in the request context for
// downstream handlers. Routes not wrapped by it are public.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				http.Error(w, "Unauthenticated", http.StatusUnauthorized)
				return
			}

			username, err := tokener.GetSubject(ctx, tokenString)
			if err != nil {
				logger.Log.Infow("authorization failed", "err", err)
				http.Error(w, "Unauthenticated", http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetUsernameToContext(ctx, username)))
		})
	}
}

type usernameContextKey struct{}

var usernameKey = usernameContextKey{}

// SetUsernameToContext stores the authenticated username in the context.
func SetUsernameToContext(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// GetUsernameFromContext returns the authenticated caller's username,
// or the empty string on a route the auth middleware did not cover.
func GetUsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(usernameKey).(string)
	return username
}
