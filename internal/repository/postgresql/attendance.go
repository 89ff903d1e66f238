package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-attendance-chart/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-chart/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.RecordSource {
	return &attendanceRepository{db: db}
}

// attendanceRow is one attendances row as read for the chart
type attendanceRow struct {
	Date     time.Time
	Status   string
	ClockIn  *time.Time
	ClockOut *time.Time
}

// ListMonthlyRecords implements attendance.RecordSource.
// Calendar gaps between recorded days are returned as rest days so that the
// n-th record is always day n of the month. Days after the last recorded
// one are omitted.
func (a *attendanceRepository) ListMonthlyRecords(ctx context.Context, companyID, employeeID string, year, month int) ([]attendance.Record, error) {
	var data []attendanceRow
	err := WithReadOnlyTransaction(ctx, a.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, a.db)

		var exists bool
		err := q.QueryRow(ctx, `
			SELECT EXISTS (
				SELECT 1 FROM employees
				WHERE id = $1 AND company_id = $2 AND deleted_at IS NULL
			)
		`, employeeID, companyID).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check employee: %w", err)
		}
		if !exists {
			return attendance.ErrEmployeeNotFound
		}

		startOfMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		endOfMonth := startOfMonth.AddDate(0, 1, 0)

		query := `
			SELECT date, status, clock_in, clock_out
			FROM attendances
			WHERE employee_id = $1
			AND company_id = $2
			AND date >= $3 AND date < $4
			ORDER BY date ASC, clock_in ASC NULLS LAST
		`

		rows, err := q.Query(ctx, query, employeeID, companyID, startOfMonth, endOfMonth)
		if err != nil {
			return fmt.Errorf("failed to list monthly attendance: %w", err)
		}
		defer rows.Close()

		for rows.Next() {
			var row attendanceRow
			if err := rows.Scan(&row.Date, &row.Status, &row.ClockIn, &row.ClockOut); err != nil {
				return fmt.Errorf("failed to scan attendance: %w", err)
			}
			data = append(data, row)
		}

		return rows.Err()
	})
	if err != nil {
		return nil, err
	}

	return recordsFromRows(data), nil
}

// recordsFromRows lays rows out by day of month. Only the first row of a
// day is used.
func recordsFromRows(rows []attendanceRow) []attendance.Record {
	if len(rows) == 0 {
		return []attendance.Record{}
	}

	lastDay := 0
	byDay := make(map[int]attendanceRow, len(rows))
	for _, row := range rows {
		day := row.Date.Day()
		if _, seen := byDay[day]; seen {
			continue
		}
		byDay[day] = row
		lastDay = max(lastDay, day)
	}

	records := make([]attendance.Record, 0, lastDay)
	for day := 1; day <= lastDay; day++ {
		row, ok := byDay[day]
		if !ok {
			records = append(records, attendance.RestDayRecord())
			continue
		}
		records = append(records, recordFromRow(row))
	}
	return records
}

func recordFromRow(row attendanceRow) attendance.Record {
	dayType := dayTypeFromStatus(row.Status)
	if dayType != attendance.DayPresent {
		return attendance.Record{Type: dayType}
	}
	return attendance.Record{
		Type:     attendance.DayPresent,
		CheckIn:  clockString(row.ClockIn),
		CheckOut: clockString(row.ClockOut),
	}
}

// attendances.status values written by the HRIS attendance service
const (
	statusPresent         = "present"
	statusLate            = "late"
	statusAbsent          = "absent"
	statusOnLeave         = "on_leave"
	statusHoliday         = "holiday"
	statusWaitingApproval = "waiting_approval"
	statusRejected        = "rejected"
)

// dayTypeFromStatus maps an attendances.status value to a chart day type.
// Only approved clock-ins count as worked: waiting_approval, rejected and
// unknown statuses chart as absent.
func dayTypeFromStatus(status string) attendance.DayType {
	switch status {
	case statusPresent, statusLate:
		return attendance.DayPresent
	case statusOnLeave:
		return attendance.DayLeave
	case statusHoliday:
		return attendance.DayRestDay
	default:
		// statusAbsent, statusWaitingApproval, statusRejected
		return attendance.DayAbsent
	}
}

// clockString formats a timestamp as "HH:MM" in UTC
func clockString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.UTC().Format("15:04")
	return &s
}
