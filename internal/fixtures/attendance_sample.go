package fixtures

import (
	"context"

	"github.com/cmlabs-hris/hris-attendance-chart/internal/domain/attendance"
)

// ==========================================
// SAMPLE ATTENDANCE MONTH
// ==========================================

// SampleAttendanceRecords returns the fixed 30-day month shown on the demo
// dashboard: 17 present days (7.0h to 9.25h), 3 absences, 2 leave days and
// 8 rest days. Each call returns a fresh slice.
func SampleAttendanceRecords() []attendance.Record {
	present := attendance.PresentRecord
	absent := attendance.AbsentRecord
	leave := attendance.LeaveRecord
	rest := attendance.RestDayRecord

	return []attendance.Record{
		// Week 1
		present("09:00", "17:30"), // 8.5h
		present("08:30", "17:30"), // 9.0h
		present("10:00", "17:30"), // 7.5h
		present("09:00", "17:45"), // 8.75h
		present("09:15", "17:45"), // 8.5h
		rest(),
		rest(),

		// Week 2
		present("09:00", "16:30"), // 7.5h
		absent(),
		present("09:00", "16:00"), // 7.0h
		leave(),
		present("08:30", "17:00"), // 8.5h
		rest(),
		rest(),

		// Week 3
		present("09:00", "18:00"), // 9.0h
		present("09:00", "17:00"), // 8.0h
		present("09:00", "16:45"), // 7.75h
		absent(),
		present("09:00", "17:15"), // 8.25h
		rest(),
		rest(),

		// Week 4
		present("08:45", "18:00"), // 9.25h
		present("09:00", "16:00"), // 7.0h
		leave(),
		present("09:30", "17:30"), // 8.0h
		absent(),
		rest(),
		rest(),

		// Days 29, 30
		present("09:00", "17:00"), // 8.0h
		present("09:00", "16:45"), // 7.75h
	}
}

// SampleSource serves the sample month for every company, employee and month.
type SampleSource struct{}

func NewSampleSource() *SampleSource {
	return &SampleSource{}
}

// ListMonthlyRecords implements attendance.RecordSource.
func (SampleSource) ListMonthlyRecords(ctx context.Context, companyID, employeeID string, year, month int) ([]attendance.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return SampleAttendanceRecords(), nil
}
