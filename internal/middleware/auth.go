package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"job-tracker/internal/model"
	"job-tracker/internal/session"
)

type tokenVerifier interface {
	Verify(raw string) (string, error)
}

type principalLoader interface {
	FindByID(ctx context.Context, id string) (model.User, error)
}

type contextKey string

const principalContextKey contextKey = "principal"

// Auth is the request gate: it extracts the session cookie, verifies
// the token, loads the principal and either attaches it to the request
// context or terminates the request with a 401.
type Auth struct {
	tokens tokenVerifier
	users  principalLoader
	cookie *session.Cookie
}

func NewAuth(tokens tokenVerifier, users principalLoader, cookie *session.Cookie) *Auth {
	return &Auth{tokens: tokens, users: users, cookie: cookie}
}

func (m *Auth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := m.cookie.Read(r)
		if !ok {
			writeUnauthorized(w, "Not authorized: no token provided")
			return
		}

		principalID, err := m.tokens.Verify(raw)
		if err != nil {
			writeUnauthorized(w, verifyFailureMessage(err))
			return
		}

		user, err := m.users.FindByID(r.Context(), principalID)
		if errors.Is(err, model.ErrUserNotFound) {
			// Valid token for a principal that no longer exists.
			writeUnauthorized(w, "Not authorized: user no longer exists")
			return
		}
		if err != nil {
			slog.Error("principal lookup failed", "error", err.Error())
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(model.MessageResponse{
				Success: false,
				Message: "Internal Server Error",
			})
			return
		}

		// Downstream code never needs the hash.
		user.PasswordHash = ""
		ctx := context.WithValue(r.Context(), principalContextKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func PrincipalFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(principalContextKey).(model.User)
	return user, ok
}

func verifyFailureMessage(err error) string {
	switch {
	case errors.Is(err, model.ErrTokenExpired):
		return "Not authorized: token expired"
	case errors.Is(err, model.ErrTokenMalformed):
		return "Not authorized: malformed token"
	default:
		return "Not authorized: invalid token"
	}
}

func writeUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(model.MessageResponse{
		Success: false,
		Message: message,
	})
}
