package middleware

import (
	"context"
	"net/http"
	"strings"

	"fieldforce/internal/auth"
	"fieldforce/internal/domain/workforce"
)

// Auth parses a bearer token when one is present and attaches the identity
// to the request context. Requests without a valid token pass through
// anonymously; handlers that need an identity use RequireUser.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				next.ServeHTTP(w, r)
				return
			}
			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), ctxKeyUser, claims.Identity())
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func GetUser(ctx context.Context) (workforce.Identity, bool) {
	user, ok := ctx.Value(ctxKeyUser).(workforce.Identity)
	return user, ok
}
