package middleware

import (
	"net/http"
	"strings"

	"github.com/2beens/traintrack/internal/auth"
	"github.com/2beens/traintrack/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

type accessChecker interface {
	VerifyAccess(token string) (userID int, err error)
}

type AuthMiddlewareHandler struct {
	checker      accessChecker
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(checker accessChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		checker: checker,
		allowedPaths: map[string]bool{
			"/":        true,
			"/version": true,

			"/auth/login":   true,
			"/auth/refresh": true,
			"/auth/logout":  true,
		},
	}
}

// accessToken prefers the cookie set at login, with the Authorization
// header as a fallback for non-browser clients.
func accessToken(r *http.Request) string {
	if cookie, err := r.Cookie(auth.AccessTokenCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if bearer := r.Header.Get("Authorization"); strings.HasPrefix(bearer, "Bearer ") {
		return strings.TrimPrefix(bearer, "Bearer ")
	}
	return ""
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, POST, PUT, DELETE, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			token := accessToken(r)
			if token == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			userID, err := h.checker.VerifyAccess(token)
			if err != nil {
				log.Tracef("[invalid token] [auth middleware] unauthorized => %s: %s", r.URL.Path, err)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-auth-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r.WithContext(auth.ContextWithUserID(ctx, userID)))
		})
	}
}
