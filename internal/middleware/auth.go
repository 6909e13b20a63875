package middleware

import (
	"context"
	"log"
	"net/http"
	"strings"
)

type contextKey string

// UserContextKey is the key for the authenticated user id in the context.
const UserContextKey = contextKey("userID")

// TokenVerifier validates a bearer token and returns the user id it names.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// AuthMiddleware gates requests on a valid JWT bearer token. Failed
// requests are answered directly; the downstream handler never runs.
type AuthMiddleware struct {
	verifier TokenVerifier
}

func NewAuthMiddleware(verifier TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

func (a *AuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			unauthorized(w)
			return
		}

		userID, err := a.verifier.Verify(parts[1])
		if err != nil {
			log.Printf("Invalid bearer token: %v", err)
			unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"message": "Invalid JWT"}`))
}
