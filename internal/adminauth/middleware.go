package adminauth

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const accountContextKey contextKey = "platedash_admin"

// WithAccount attaches the authenticated account to the context.
func WithAccount(ctx context.Context, account Account) context.Context {
	return context.WithValue(ctx, accountContextKey, account)
}

// AccountFromContext retrieves the authenticated account, if any.
func AccountFromContext(ctx context.Context) (Account, bool) {
	account, ok := ctx.Value(accountContextKey).(Account)
	return account, ok
}

// Middleware validates the Bearer token and injects the account into the
// request context. Requests without a valid token get a bare 401.
func Middleware(tokens *TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
			if err != nil {
				w.WriteHeader(http.StatusUnauthorized)
				return
			}
			account := Account{Username: claims.Username, Role: claims.Role}
			next.ServeHTTP(w, r.WithContext(WithAccount(r.Context(), account)))
		})
	}
}
