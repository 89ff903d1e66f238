package fixtures

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-attendance-chart/internal/domain/attendance"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSampleAttendanceRecords(t *testing.T) {
	records := SampleAttendanceRecords()
	require.Len(t, records, 30)

	counts := map[attendance.DayType]int{}
	for _, rec := range records {
		counts[rec.Type]++
		if rec.Type == attendance.DayPresent {
			assert.NotNil(t, rec.CheckIn)
			assert.NotNil(t, rec.CheckOut)
		} else {
			assert.Nil(t, rec.CheckIn)
			assert.Nil(t, rec.CheckOut)
		}
	}

	assert.Equal(t, 17, counts[attendance.DayPresent])
	assert.Equal(t, 3, counts[attendance.DayAbsent])
	assert.Equal(t, 2, counts[attendance.DayLeave])
	assert.Equal(t, 8, counts[attendance.DayRestDay])
}

func TestSampleAttendanceRecords_FreshSlice(t *testing.T) {
	first := SampleAttendanceRecords()
	*first[0].CheckIn = "12:00"
	first[1] = attendance.AbsentRecord()

	second := SampleAttendanceRecords()
	assert.Equal(t, "09:00", *second[0].CheckIn)
	assert.Equal(t, attendance.DayPresent, second[1].Type)
}

func TestSampleSource(t *testing.T) {
	source := NewSampleSource()

	records, err := source.ListMonthlyRecords(context.Background(), "company", "any", 2025, 1)
	require.NoError(t, err)
	assert.Len(t, records, 30)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = source.ListMonthlyRecords(ctx, "company", "any", 2025, 1)
	assert.ErrorIs(t, err, context.Canceled)
}
