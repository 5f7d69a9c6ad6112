package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"habit-tracker-go/internal/auth"
	"habit-tracker-go/pkg/logger"
)

type contextKey int

const userKey contextKey = 0

type User struct {
	ID       string
	Username string
}

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// TokenAuth authenticates requests carrying an "Authorization: Bearer" token.
type TokenAuth struct {
	tokens TokenVerifier
	log    logger.Logger
}

func NewTokenAuth(tokens TokenVerifier, log logger.Logger) *TokenAuth {
	return &TokenAuth{tokens: tokens, log: log}
}

func (a *TokenAuth) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r.Header.Get("Authorization"))
		if !ok {
			unauthorized(w)
			return
		}

		claims, err := a.tokens.Verify(token)
		if err != nil {
			a.log.BusinessError("auth.verify: rejected token", err, "path", r.URL.Path)
			unauthorized(w)
			return
		}

		ctx := WithUser(r.Context(), User{ID: claims.UserID(), Username: claims.Username})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func bearerToken(value string) (string, bool) {
	parts := strings.Fields(value)
	if len(parts) != 2 {
		return "", false
	}
	if !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	return parts[1], true
}

func unauthorized(w http.ResponseWriter) {
	writeError(w, http.StatusUnauthorized, "invalid_token", "invalid token")
}

func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func UserFromContext(ctx context.Context) (User, bool) {
	value := ctx.Value(userKey)
	user, ok := value.(User)
	if !ok || user.ID == "" {
		return User{}, false
	}
	return user, true
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]interface{}{
		"error": map[string]string{
			"code":    code,
			"message": message,
		},
	})
}
