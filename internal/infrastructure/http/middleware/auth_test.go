package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/platewise/platewise/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func signToken(t *testing.T, subject, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func authHandler() (http.Handler, *uuid.UUID) {
	var seen uuid.UUID
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if userID, ok := UserIDFromContext(r.Context()); ok {
			seen = userID
		}
		w.WriteHeader(http.StatusOK)
	})
	return Authenticate(config.AuthConfig{JWTSecret: testSecret})(next), &seen
}

func TestAuthenticate(t *testing.T) {
	t.Run("ValidToken_PutsUserIDInContext", func(t *testing.T) {
		handler, seen := authHandler()
		userID := uuid.New()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/list", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, userID.String(), testSecret))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, userID, *seen)
	})

	t.Run("MissingHeader_Unauthorized", func(t *testing.T) {
		handler, _ := authHandler()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/list", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("MalformedHeader_Unauthorized", func(t *testing.T) {
		handler, _ := authHandler()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/list", nil)
		req.Header.Set("Authorization", "Token abc")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("WrongSecret_Unauthorized", func(t *testing.T) {
		handler, _ := authHandler()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/list", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, uuid.NewString(), "other-secret"))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("NonUUIDSubject_Unauthorized", func(t *testing.T) {
		handler, _ := authHandler()

		req := httptest.NewRequest(http.MethodGet, "/api/v1/list", nil)
		req.Header.Set("Authorization", "Bearer "+signToken(t, "not-a-uuid", testSecret))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
