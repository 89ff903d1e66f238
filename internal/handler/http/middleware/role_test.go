package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-attendance-chart/internal/domain/auth"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serveWithToken(t *testing.T, claims map[string]interface{}, h http.Handler) *httptest.ResponseRecorder {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("middleware-secret"), nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if claims != nil {
		_, tokenString, err := tokenAuth.Encode(claims)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+tokenString)
	}

	handler := jwtauth.Verifier(tokenAuth)(AuthRequired(h))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func serveWithClaims(t *testing.T, claims map[string]interface{}, h http.Handler) int {
	t.Helper()
	return serveWithToken(t, claims, h).Code
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthRequired(t *testing.T) {
	assert.Equal(t, http.StatusOK, serveWithClaims(t, map[string]interface{}{"type": "access"}, okHandler()))
	assert.Equal(t, http.StatusUnauthorized, serveWithClaims(t, map[string]interface{}{"type": "refresh"}, okHandler()))
	assert.Equal(t, http.StatusUnauthorized, serveWithClaims(t, map[string]interface{}{}, okHandler()))
}

func TestAuthRequired_MissingToken(t *testing.T) {
	w := serveWithToken(t, nil, okHandler())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), auth.ErrInvalidToken.Error())
}

func TestAuthRequired_ExpiredToken(t *testing.T) {
	claims := map[string]interface{}{
		"type": "access",
		"exp":  time.Now().Add(-time.Hour).Unix(),
	}

	w := serveWithToken(t, claims, okHandler())
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Token expired")
}

func TestRequireManager(t *testing.T) {
	tests := []struct {
		role string
		want int
	}{
		{"owner", http.StatusOK},
		{"manager", http.StatusOK},
		{"employee", http.StatusForbidden},
		{"pending", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			claims := map[string]interface{}{"type": "access", "role": tt.role}
			assert.Equal(t, tt.want, serveWithClaims(t, claims, RequireManager(okHandler())))
		})
	}

	claims := map[string]interface{}{"type": "access"}
	assert.Equal(t, http.StatusForbidden, serveWithClaims(t, claims, RequireManager(okHandler())))
}
