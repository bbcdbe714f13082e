package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/billowria/bookshorts/internal/model"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

const (
	contextKeyUserID contextKey = "user_id"
	contextKeyRole   contextKey = "role"
)

// requireAuth validates the bearer token and attaches the user ID to the
// request context.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			writeError(w, http.StatusUnauthorized, "missing authorization header", s.logger)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeError(w, http.StatusUnauthorized, "invalid authorization header format", s.logger)
			return
		}

		userID, err := s.auth.Tokens().GetUserID(r.Context(), parts[1])
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid or expired token", s.logger)
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyUserID, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireAdmin ensures the authenticated user carries the admin role.
// Must be used after requireAuth. A failed role lookup denies access
// rather than assuming anything about the caller.
func (s *Server) requireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := userIDFrom(r.Context())
		if !ok {
			writeError(w, http.StatusUnauthorized, "not authenticated", s.logger)
			return
		}

		role, err := s.auth.GetRole(r.Context(), userID)
		if err != nil {
			s.logger.Error("failed to resolve role, denying admin access",
				"user_id", userID,
				"error", err.Error())
			writeError(w, http.StatusForbidden, "admin access required", s.logger)
			return
		}
		if role != model.RoleAdmin {
			writeError(w, http.StatusForbidden, "admin access required", s.logger)
			return
		}

		ctx := context.WithValue(r.Context(), contextKeyRole, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFrom extracts the authenticated user ID from request context.
func userIDFrom(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(contextKeyUserID).(uuid.UUID)
	return userID, ok
}
