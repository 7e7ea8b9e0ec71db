package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"ecobin-backend/internal/security"
)

func testRouter(t *testing.T) (security.TokenManager, http.Handler) {
	t.Helper()
	tm := security.NewTokenManager("router-test-secret-0123456789abcdef", 15, 60)
	router := NewRouter(RouterDeps{TokenManager: tm})
	return tm, router
}

func TestRouter_CancelRedemptionRequiresAdmin(t *testing.T) {
	tm, router := testRouter(t)

	t.Run("UserTokenRejected", func(t *testing.T) {
		token, err := tm.GenerateAccessToken(1, "ana@example.com", "user")
		assert.NoError(t, err)

		req := httptest.NewRequest("POST", "/api/v1/admin/redemptions/77/cancel", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("MissingTokenRejected", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/api/v1/admin/redemptions/77/cancel", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("NoCancelRouteOutsideAdmin", func(t *testing.T) {
		token, err := tm.GenerateAccessToken(1, "ana@example.com", "user")
		assert.NoError(t, err)

		req := httptest.NewRequest("POST", "/api/v1/redemptions/77/cancel", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	tm := security.NewTokenManager("router-test-secret-0123456789abcdef", 15, 60)
	mw := NewAuthMiddleware(tm)

	handlerHit := false
	protected := mw.RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handlerHit = true
		w.WriteHeader(http.StatusOK)
	}))

	t.Run("AdminTokenPasses", func(t *testing.T) {
		handlerHit = false
		token, err := tm.GenerateAccessToken(9, "root@example.com", "admin")
		assert.NoError(t, err)

		req := httptest.NewRequest("POST", "/whatever", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, handlerHit)
	})

	t.Run("UserTokenBlocked", func(t *testing.T) {
		handlerHit = false
		token, err := tm.GenerateAccessToken(1, "ana@example.com", "user")
		assert.NoError(t, err)

		req := httptest.NewRequest("POST", "/whatever", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, handlerHit)
	})

	t.Run("RefreshTokenBlocked", func(t *testing.T) {
		handlerHit = false
		token, err := tm.GenerateRefreshToken(9, "root@example.com")
		assert.NoError(t, err)

		req := httptest.NewRequest("POST", "/whatever", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.False(t, handlerHit)
	})
}
