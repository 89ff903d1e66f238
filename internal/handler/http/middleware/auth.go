package middleware

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-chart/internal/domain/auth"
	"github.com/cmlabs-hris/hris-attendance-chart/internal/handler/http/response"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired rejects requests without a verified access token. It runs
// after jwtauth.Verifier, which leaves the token or the verification error
// in the request context.
func AuthRequired(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())
		switch {
		case errors.Is(err, jwtauth.ErrExpired):
			response.HandleError(w, auth.ErrTokenExpired)
			return
		case err != nil, token == nil:
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		// refresh tokens share the signing key
		if tokenType, _ := claims["type"].(string); tokenType != "access" {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		next.ServeHTTP(w, r)
	})
}
