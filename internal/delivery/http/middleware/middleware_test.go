package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"vetclinic-api/config"
	"vetclinic-api/internal/domain/entity"
	"vetclinic-api/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	m := NewAuthMiddleware(nil, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)

	m.Authenticate(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	m := NewAuthMiddleware(nil, nil)

	for _, header := range []string{"token-without-scheme", "Basic abc123", "Bearer"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
		req.Header.Set("Authorization", header)

		m.Authenticate(okHandler()).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q", header)
	}
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:       "test-secret",
		AccessExpiry: time.Minute,
	})
	m := NewAuthMiddleware(jwtService, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	req.Header.Set("Authorization", "Bearer not.a.valid.token")

	m.Authenticate(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthenticate_RefreshTokenRejected(t *testing.T) {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  time.Minute,
		RefreshExpiry: time.Hour,
	})
	m := NewAuthMiddleware(jwtService, nil)

	token, _, err := jwtService.GenerateRefreshToken(uuid.New(), "owner@example.com", entity.RoleIDPetOwner)
	assert.NoError(t, err)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	m.Authenticate(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRateLimit_DisabledPassesThrough(t *testing.T) {
	m := NewRateLimitMiddleware(config.RateLimitConfig{Enabled: false, Requests: 100, Window: 15 * time.Minute}, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)

	m.Limit(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

func TestRateLimit_NoRedisPassesThrough(t *testing.T) {
	m := NewRateLimitMiddleware(config.RateLimitConfig{Enabled: true, Requests: 100, Window: 15 * time.Minute}, nil)
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)

	m.Limit(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name       string
		remoteAddr string
		headers    map[string]string
		want       string
	}{
		{"remote addr with port", "203.0.113.7:51234", nil, "203.0.113.7"},
		{"x-forwarded-for single", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "198.51.100.4"}, "198.51.100.4"},
		{"x-forwarded-for chain keeps first", "10.0.0.1:80", map[string]string{"X-Forwarded-For": "198.51.100.4, 10.0.0.2"}, "198.51.100.4"},
		{"x-real-ip fallback", "10.0.0.1:80", map[string]string{"X-Real-Ip": "192.0.2.9"}, "192.0.2.9"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
			req.RemoteAddr = tc.remoteAddr
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}

			assert.Equal(t, tc.want, clientIP(req))
		})
	}
}

func requestWithRole(roleID int) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctor/upcoming", nil)
	ctx := context.WithValue(req.Context(), RoleIDKey, roleID)
	return req.WithContext(ctx)
}

func TestRequireRole_Allowed(t *testing.T) {
	rec := httptest.NewRecorder()

	RequireDoctor(okHandler()).ServeHTTP(rec, requestWithRole(entity.RoleIDDoctor))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole_Forbidden(t *testing.T) {
	rec := httptest.NewRecorder()

	RequireDoctor(okHandler()).ServeHTTP(rec, requestWithRole(entity.RoleIDPetOwner))

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestRequireRole_MissingRole(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/doctor/upcoming", nil)

	RequireAdmin(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole_MultipleRoles(t *testing.T) {
	for _, roleID := range []int{entity.RoleIDAdmin, entity.RoleIDDoctor} {
		rec := httptest.NewRecorder()

		RequireAdminOrDoctor(okHandler()).ServeHTTP(rec, requestWithRole(roleID))

		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

func TestContextHelpers(t *testing.T) {
	userID := uuid.New()
	ctx := context.WithValue(context.Background(), UserIDKey, userID)
	ctx = context.WithValue(ctx, UserEmailKey, "owner@example.com")
	ctx = context.WithValue(ctx, RoleIDKey, entity.RoleIDPetOwner)
	ctx = context.WithValue(ctx, TokenIDKey, "token-123")

	gotID, ok := GetUserIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, userID, gotID)

	email, ok := GetUserEmailFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "owner@example.com", email)

	roleID, ok := GetRoleIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, entity.RoleIDPetOwner, roleID)

	tokenID, ok := GetTokenIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "token-123", tokenID)

	_, ok = GetUserIDFromContext(context.Background())
	assert.False(t, ok)
}
