package attendance

import (
	"fmt"

	"github.com/cmlabs-hris/hris-attendance-chart/internal/domain/attendance"
)

const (
	// ChartWindowDays is the number of records charted; later records are dropped.
	ChartWindowDays = 30

	// TargetHours is the daily worked time that turns a bar green.
	TargetHours = 8.0

	// SpecialDayValue is the bar height of Leave and Rest Day entries. It sits
	// above the normal worked-hour range so those bars stand out.
	SpecialDayValue = 10.0
)

type buildOptions struct {
	averageScope attendance.AverageScope
}

// BuildOption customizes a single BuildChartSeries call.
type BuildOption func(*buildOptions)

// WithAverageScope chooses which records feed the average daily worked time.
func WithAverageScope(scope attendance.AverageScope) BuildOption {
	return func(o *buildOptions) {
		if scope == attendance.ScopeChartWindow {
			o.averageScope = attendance.ScopeChartWindow
			return
		}
		o.averageScope = attendance.ScopeAllRecords
	}
}

// WorkedHours returns the unclamped worked time of a present day in hours.
// It is negative when check-out is earlier than check-in.
func WorkedHours(rec attendance.Record) float64 {
	durationMinutes := ParseTimeToMinutes(rec.CheckOut) - ParseTimeToMinutes(rec.CheckIn)
	return float64(durationMinutes) / 60
}

// ClassifyDay returns the bar value and color of one record. Present days
// are colored from the unclamped duration while the bar height is clamped
// at zero, so an inverted check-in/check-out still shows red.
func ClassifyDay(rec attendance.Record) (float64, attendance.BarColor) {
	switch rec.Type {
	case attendance.DayPresent:
		hours := WorkedHours(rec)
		value := max(0, hours)
		switch {
		case hours >= TargetHours:
			return value, attendance.ColorTargetMet
		case hours > 0:
			return value, attendance.ColorShort
		default:
			return value, attendance.ColorCritical
		}
	case attendance.DayAbsent:
		return 0, attendance.ColorCritical
	default:
		// Leave or Rest Day
		return SpecialDayValue, attendance.ColorNeutralSpecial
	}
}

// DayLabel formats a zero-based position as a two-digit day number.
func DayLabel(index int) string {
	return fmt.Sprintf("%02d", index+1)
}

// BuildChartSeries derives the chart series and the average daily worked
// time from an ordered run of daily records. It never fails: missing or
// malformed data degrades to zero values.
//
// Only the first ChartWindowDays records are charted. By default the
// average scans every supplied record, which differs from the chart once
// more than ChartWindowDays records are passed.
func BuildChartSeries(records []attendance.Record, opts ...BuildOption) attendance.ChartSeries {
	o := buildOptions{averageScope: attendance.ScopeAllRecords}
	for _, opt := range opts {
		opt(&o)
	}

	window := records
	if len(window) > ChartWindowDays {
		window = window[:ChartWindowDays]
	}

	series := attendance.ChartSeries{
		Labels: make([]string, 0, len(window)),
		Values: make([]float64, 0, len(window)),
		Colors: make([]attendance.BarColor, 0, len(window)),
	}

	for i, rec := range window {
		value, color := ClassifyDay(rec)
		series.Labels = append(series.Labels, DayLabel(i))
		series.Values = append(series.Values, value)
		series.Colors = append(series.Colors, color)
	}

	averaged := records
	if o.averageScope == attendance.ScopeChartWindow {
		averaged = window
	}
	series.AverageDailyWorkedHours = AverageDailyWorkedHours(averaged)

	return series
}

// AverageDailyWorkedHours averages the worked time of present days with a
// strictly positive duration. Absent, Leave and Rest Day never count. The
// result is exactly 0 when no day qualifies.
func AverageDailyWorkedHours(records []attendance.Record) float64 {
	var (
		totalHours float64
		qualifying int
	)
	for _, rec := range records {
		if rec.Type != attendance.DayPresent {
			continue
		}
		hours := WorkedHours(rec)
		if hours <= 0 {
			continue
		}
		totalHours += hours
		qualifying++
	}

	if qualifying == 0 {
		return 0
	}
	return totalHours / float64(qualifying)
}

// SummarizeDays counts the charted days per type.
func SummarizeDays(records []attendance.Record) attendance.DaySummary {
	if len(records) > ChartWindowDays {
		records = records[:ChartWindowDays]
	}

	summary := attendance.DaySummary{Total: len(records)}
	for _, rec := range records {
		switch rec.Type {
		case attendance.DayPresent:
			summary.Present++
		case attendance.DayAbsent:
			summary.Absent++
		case attendance.DayLeave:
			summary.Leave++
		case attendance.DayRestDay:
			summary.RestDay++
		}
	}
	return summary
}
