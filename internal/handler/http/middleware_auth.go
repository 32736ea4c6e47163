package http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/festivize/festivize/internal/logger"
	"github.com/festivize/festivize/internal/utils"
)

// withAuth validates the bearer token and stores the caller's user ID and
// role in the request context. Requests without a valid token get 401.
func (h *HTTPHandler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := utils.ParseBearerToken(r.Header.Get("Authorization"))
		if err != nil {
			writeMessage(w, "authorization required", http.StatusUnauthorized)
			return
		}

		token, err := h.services.Auth.ParseToken(tokenString)
		if err != nil {
			log.Warn().Str("func", "*HTTPHandler.withAuth").Msg("rejected invalid token")
			writeMessage(w, "token is expired or invalid", http.StatusUnauthorized)
			return
		}

		userID, err := strconv.ParseInt(token.Claims.UserID, 10, 64)
		if err != nil {
			writeMessage(w, "token is expired or invalid", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)
		ctx = context.WithValue(ctx, utils.UserRoleCtxKey, token.Claims.Role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withAdmin allows only callers whose token carries the admin role. Must run
// after withAuth.
func (h *HTTPHandler) withAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !utils.IsAdminContext(r.Context()) {
			writeMessage(w, "admin role required", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}
