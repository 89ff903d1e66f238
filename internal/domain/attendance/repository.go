package attendance

import (
	"context"
)

// RecordSource supplies the ordered daily records of one employee's month.
// Implementations return at most one record per calendar day, in day order.
type RecordSource interface {
	// ListMonthlyRecords returns ErrEmployeeNotFound when the employee is
	// unknown or belongs to another company
	ListMonthlyRecords(ctx context.Context, companyID, employeeID string, year, month int) ([]Record, error)
}
