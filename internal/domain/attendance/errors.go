package attendance

import "errors"

// Attendance chart domain errors
var (
	// Record construction errors
	ErrUnknownDayType       = errors.New("unknown attendance day type")
	ErrTimesOnNonPresentDay = errors.New("check-in/check-out times are only allowed on present days")

	// Lookup errors
	ErrEmployeeNotFound = errors.New("employee not found")
	ErrNoEmployeeClaim  = errors.New("employee_id not found in token claims")
	ErrNoCompanyClaim   = errors.New("company_id not found in token claims")

	ErrUnknownAverageScope = errors.New("unknown average scope")
	ErrUnknownSourceType   = errors.New("unknown attendance record source")
)
