package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/devconnect/devconnect-go/internal/crypto"
)

type contextKey string

const userIDKey contextKey = "userID"

// TokenHeader is the request header carrying the signed identity token.
const TokenHeader = "x-auth-token"

// TokenAuth returns middleware that validates the x-auth-token header and
// attaches the identified user ID to the request context. It must run ahead
// of any handler that requires identity.
func TokenAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get(TokenHeader)
			if token == "" {
				writeJSONError(w, http.StatusUnauthorized, "No token, authorization denied")
				return
			}

			userID, err := crypto.ValidateToken(token, secret)
			if err != nil {
				writeJSONError(w, http.StatusUnauthorized, "Token is not valid")
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext extracts the authenticated user ID from the request context.
func UserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]any{
		"errors": []map[string]string{{"msg": msg}},
	})
}
