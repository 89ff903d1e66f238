package response

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-chart/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-chart/internal/domain/auth"
	"github.com/cmlabs-hris/hris-attendance-chart/internal/domain/user"
	"github.com/cmlabs-hris/hris-attendance-chart/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, user.ErrManagerAccessRequired):
		Forbidden(w, "Manager access required")

	// Attendance chart domain errors
	case errors.Is(err, attendance.ErrNoEmployeeClaim):
		Forbidden(w, "Account is not linked to an employee")
	case errors.Is(err, attendance.ErrNoCompanyClaim):
		Forbidden(w, "Account is not linked to a company")
	case errors.Is(err, attendance.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, attendance.ErrUnknownDayType),
		errors.Is(err, attendance.ErrTimesOnNonPresentDay),
		errors.Is(err, attendance.ErrUnknownAverageScope):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		slog.Error("unhandled error", "error", err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
