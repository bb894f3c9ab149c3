package middleware

import (
	"net/http"

	"donorlink-web/internal/auth"
	"donorlink-web/internal/logger"
	"donorlink-web/internal/user"

	"go.uber.org/zap"
)

// AuthMiddleware attaches the caller identity from a valid access token.
// Requests without a usable token continue anonymously.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := auth.ExtractAccessToken(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := user.ParseJWT(secret, tokenStr)
			if err != nil {
				logger.FromCtx(r.Context()).Debug("ignoring invalid access token", zap.Error(err))
				next.ServeHTTP(w, r)
				return
			}

			ctx := auth.WithIdentity(r.Context(), auth.Identity{
				UserID: int(claims.UserID),
				Email:  claims.Email,
				Role:   claims.Role,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
