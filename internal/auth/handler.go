package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/2beens/traintrack/internal/telemetry/tracing"
	"github.com/2beens/traintrack/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	AccessTokenCookie  = "tt_access"
	RefreshTokenCookie = "tt_refresh"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{
		service: service,
	}
}

// SetupRoutes registers all auth endpoints except login, which gets
// wired separately with a rate limiter in front of it.
func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/auth/refresh", handler.HandleRefresh).Methods("POST", "OPTIONS").Name("refresh")
	router.HandleFunc("/auth/logout", handler.HandleLogout).Methods("POST", "OPTIONS").Name("logout")
	router.HandleFunc("/auth/me", handler.HandleMe).Methods("GET", "OPTIONS").Name("me")
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	User      *User     `json:"user"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (handler *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "auth.handler.login")
	defer span.End()

	var req loginRequest
	switch {
	case strings.HasPrefix(r.Header.Get("Content-Type"), "application/json"):
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "error, invalid login request", http.StatusBadRequest)
			return
		}
	default:
		if err := r.ParseForm(); err != nil {
			log.Errorf("login failed, parse form error: %s", err)
			http.Error(w, "parse form error", http.StatusInternalServerError)
			return
		}
		req.Username = r.Form.Get("username")
		req.Password = r.Form.Get("password")
	}

	if req.Username == "" || req.Password == "" {
		http.Error(w, "error, username or password empty", http.StatusBadRequest)
		return
	}

	pair, user, err := handler.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			http.Error(w, "error, invalid credentials", http.StatusUnauthorized)
			return
		}
		log.Errorf("login failed for user %q: %s", req.Username, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	log.Tracef("user %q logged in", user.Username)

	setTokenCookies(w, r, pair)

	respBytes, err := json.Marshal(loginResponse{
		User:      user,
		ExpiresAt: pair.AccessExpiresAt,
	})
	if err != nil {
		log.Errorf("marshal login response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respBytes))
}

func (handler *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "auth.handler.refresh")
	defer span.End()

	refreshCookie, err := r.Cookie(RefreshTokenCookie)
	if err != nil || refreshCookie.Value == "" {
		http.Error(w, "error, no refresh token", http.StatusUnauthorized)
		return
	}

	pair, err := handler.service.Refresh(ctx, refreshCookie.Value)
	if err != nil {
		if errors.Is(err, ErrSessionExpired) {
			clearTokenCookies(w, r)
			http.Error(w, "error, session expired", http.StatusUnauthorized)
			return
		}
		log.Errorf("refresh token failed: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	setTokenCookies(w, r, pair)

	respBytes, err := json.Marshal(struct {
		ExpiresAt time.Time `json:"expiresAt"`
	}{ExpiresAt: pair.AccessExpiresAt})
	if err != nil {
		log.Errorf("marshal refresh response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respBytes))
}

func (handler *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "auth.handler.logout")
	defer span.End()

	if refreshCookie, err := r.Cookie(RefreshTokenCookie); err == nil && refreshCookie.Value != "" {
		if err := handler.service.Logout(ctx, refreshCookie.Value); err != nil {
			// the cookies get cleared either way, the session will just
			// linger in redis until its TTL runs out
			log.Errorf("logout, revoke refresh token: %s", err)
		}
	}

	clearTokenCookies(w, r)
	pkg.WriteTextResponseOK(w, "logged out")
}

func (handler *Handler) HandleMe(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "auth.handler.me")
	defer span.End()

	userID, ok := UserIDFromContext(ctx)
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return
	}

	user, err := handler.service.GetUser(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			http.Error(w, "user not found", http.StatusNotFound)
			return
		}
		log.Errorf("get user %d: %s", userID, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	respBytes, err := json.Marshal(user)
	if err != nil {
		log.Errorf("marshal user response: %s", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSONResponseOK(w, string(respBytes))
}

func setTokenCookies(w http.ResponseWriter, r *http.Request, pair *TokenPair) {
	// no Secure flag for local development over plain http
	secure := !pkg.IPIsLocal(r.RemoteAddr)
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    pair.AccessToken,
		Path:     "/",
		Expires:  pair.AccessExpiresAt,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookie,
		Value:    pair.RefreshToken,
		Path:     "/auth",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func clearTokenCookies(w http.ResponseWriter, r *http.Request) {
	secure := !pkg.IPIsLocal(r.RemoteAddr)
	http.SetCookie(w, &http.Cookie{
		Name:     AccessTokenCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshTokenCookie,
		Value:    "",
		Path:     "/auth",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	})
}
