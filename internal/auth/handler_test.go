package auth

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cookieByName(t *testing.T, cookies []*http.Cookie, name string) *http.Cookie {
	t.Helper()
	for _, c := range cookies {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("cookie %s not set", name)
	return nil
}

func TestHandler_HandleLogin_JSON(t *testing.T) {
	service, mock := newTestService(t)
	handler := NewHandler(service)

	mock.ExpectSet(refreshTokenKeyPrefix+"test_refresh_token", "42", time.Hour).SetVal("OK")

	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(
		`{"username": "testuser", "password": "testpass"}`,
	))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.HandleLogin(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"username":"testuser"`)
	// password hash must never leak into the response
	assert.NotContains(t, rr.Body.String(), testPasswordHash)

	cookies := rr.Result().Cookies()
	accessCookie := cookieByName(t, cookies, AccessTokenCookie)
	assert.Equal(t, "/", accessCookie.Path)
	assert.True(t, accessCookie.HttpOnly)
	assert.NotEmpty(t, accessCookie.Value)

	refreshCookie := cookieByName(t, cookies, RefreshTokenCookie)
	assert.Equal(t, "/auth", refreshCookie.Path)
	assert.True(t, refreshCookie.HttpOnly)
	assert.Equal(t, "test_refresh_token", refreshCookie.Value)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_HandleLogin_Form(t *testing.T) {
	service, mock := newTestService(t)
	handler := NewHandler(service)

	mock.ExpectSet(refreshTokenKeyPrefix+"test_refresh_token", "42", time.Hour).SetVal("OK")

	form := url.Values{}
	form.Set("username", "testuser")
	form.Set("password", "testpass")
	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rr := httptest.NewRecorder()
	handler.HandleLogin(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_HandleLogin_InvalidCredentials(t *testing.T) {
	service, _ := newTestService(t)
	handler := NewHandler(service)

	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(
		`{"username": "testuser", "password": "invalid_pass"}`,
	))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.HandleLogin(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Empty(t, rr.Result().Cookies())
}

func TestHandler_HandleLogin_EmptyCredentials(t *testing.T) {
	service, _ := newTestService(t)
	handler := NewHandler(service)

	req := httptest.NewRequest("POST", "/auth/login", strings.NewReader(
		`{"username": "", "password": ""}`,
	))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.HandleLogin(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestHandler_HandleRefresh(t *testing.T) {
	service, mock := newTestService(t)
	handler := NewHandler(service)

	oldKey := refreshTokenKeyPrefix + "old_refresh_token"
	mock.ExpectGet(oldKey).SetVal("42")
	mock.ExpectDel(oldKey).SetVal(1)
	mock.ExpectSet(refreshTokenKeyPrefix+"test_refresh_token", "42", time.Hour).SetVal("OK")

	req := httptest.NewRequest("POST", "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "old_refresh_token"})
	rr := httptest.NewRecorder()
	handler.HandleRefresh(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "expiresAt")

	refreshCookie := cookieByName(t, rr.Result().Cookies(), RefreshTokenCookie)
	assert.Equal(t, "test_refresh_token", refreshCookie.Value)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_HandleRefresh_Expired(t *testing.T) {
	service, mock := newTestService(t)
	handler := NewHandler(service)

	mock.ExpectGet(refreshTokenKeyPrefix + "dead_token").RedisNil()

	req := httptest.NewRequest("POST", "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "dead_token"})
	rr := httptest.NewRecorder()
	handler.HandleRefresh(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	// both cookies get wiped so the client stops retrying with a dead token
	accessCookie := cookieByName(t, rr.Result().Cookies(), AccessTokenCookie)
	assert.Empty(t, accessCookie.Value)
	assert.Equal(t, -1, accessCookie.MaxAge)
}

func TestHandler_HandleRefresh_NoCookie(t *testing.T) {
	service, _ := newTestService(t)
	handler := NewHandler(service)

	req := httptest.NewRequest("POST", "/auth/refresh", nil)
	rr := httptest.NewRecorder()
	handler.HandleRefresh(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestHandler_HandleLogout(t *testing.T) {
	service, mock := newTestService(t)
	handler := NewHandler(service)

	mock.ExpectDel(refreshTokenKeyPrefix + "test_refresh_token").SetVal(1)

	req := httptest.NewRequest("POST", "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: RefreshTokenCookie, Value: "test_refresh_token"})
	rr := httptest.NewRecorder()
	handler.HandleLogout(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "logged out", rr.Body.String())

	refreshCookie := cookieByName(t, rr.Result().Cookies(), RefreshTokenCookie)
	assert.Empty(t, refreshCookie.Value)
	assert.Equal(t, -1, refreshCookie.MaxAge)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestHandler_HandleMe(t *testing.T) {
	service, _ := newTestService(t)
	handler := NewHandler(service)

	req := httptest.NewRequest("GET", "/auth/me", nil)
	req = req.WithContext(ContextWithUserID(req.Context(), 42))
	rr := httptest.NewRecorder()
	handler.HandleMe(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"username":"testuser"`)
}

func TestHandler_HandleMe_Unauthenticated(t *testing.T) {
	service, _ := newTestService(t)
	handler := NewHandler(service)

	req := httptest.NewRequest("GET", "/auth/me", nil)
	rr := httptest.NewRecorder()
	handler.HandleMe(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
