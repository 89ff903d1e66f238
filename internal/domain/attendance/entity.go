package attendance

import (
	"fmt"
	"strings"
)

// DayType classifies a single attendance day.
type DayType int

const (
	DayPresent DayType = iota + 1
	DayAbsent
	DayLeave
	DayRestDay
)

func (t DayType) String() string {
	switch t {
	case DayPresent:
		return "Present"
	case DayAbsent:
		return "Absent"
	case DayLeave:
		return "Leave"
	case DayRestDay:
		return "Rest Day"
	default:
		return fmt.Sprintf("DayType(%d)", int(t))
	}
}

// IsValid reports whether t is one of the four known day types.
func (t DayType) IsValid() bool {
	return t >= DayPresent && t <= DayRestDay
}

// ParseDayType accepts the dashboard spelling ("Rest Day") as well as
// snake_case and compact forms, case-insensitively.
func ParseDayType(s string) (DayType, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	normalized = strings.NewReplacer(" ", "", "_", "", "-", "").Replace(normalized)

	switch normalized {
	case "present":
		return DayPresent, nil
	case "absent":
		return DayAbsent, nil
	case "leave":
		return DayLeave, nil
	case "restday":
		return DayRestDay, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDayType, s)
	}
}

func (t DayType) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownDayType, int(t))
	}
	return []byte(t.String()), nil
}

func (t *DayType) UnmarshalText(text []byte) error {
	parsed, err := ParseDayType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Record is one day of attendance. CheckIn and CheckOut are "HH:MM" wall
// clock strings and only carry meaning when Type is DayPresent.
type Record struct {
	Type     DayType
	CheckIn  *string
	CheckOut *string
}

// NewRecord builds a record and rejects clock times on non-present days.
// A present day may still have missing times; those chart as zero hours.
func NewRecord(dayType DayType, checkIn, checkOut *string) (Record, error) {
	if !dayType.IsValid() {
		return Record{}, fmt.Errorf("%w: %d", ErrUnknownDayType, int(dayType))
	}
	if dayType != DayPresent && (checkIn != nil || checkOut != nil) {
		return Record{}, fmt.Errorf("%w: %s", ErrTimesOnNonPresentDay, dayType)
	}
	return Record{Type: dayType, CheckIn: checkIn, CheckOut: checkOut}, nil
}

func PresentRecord(checkIn, checkOut string) Record {
	return Record{Type: DayPresent, CheckIn: &checkIn, CheckOut: &checkOut}
}

func AbsentRecord() Record {
	return Record{Type: DayAbsent}
}

func LeaveRecord() Record {
	return Record{Type: DayLeave}
}

func RestDayRecord() Record {
	return Record{Type: DayRestDay}
}

// BarColor is the hex color token of a chart bar.
type BarColor string

const (
	ColorTargetMet      BarColor = "#2aa54f" // green
	ColorShort          BarColor = "#ffc107" // yellow
	ColorCritical       BarColor = "#d83b13" // red
	ColorNeutralSpecial BarColor = "#007bff" // blue
)

// Name returns the human color name used in tooltips.
func (c BarColor) Name() string {
	switch c {
	case ColorTargetMet:
		return "Green"
	case ColorShort:
		return "Yellow"
	case ColorCritical:
		return "Red"
	case ColorNeutralSpecial:
		return "Blue"
	default:
		return string(c)
	}
}

// AverageScope selects which records feed the average daily worked time.
type AverageScope string

const (
	// ScopeAllRecords scans every supplied record, including those past the
	// 30-day chart window.
	ScopeAllRecords AverageScope = "all"
	// ScopeChartWindow only scans the records that are charted.
	ScopeChartWindow AverageScope = "window"
)

func ParseAverageScope(s string) (AverageScope, error) {
	switch AverageScope(strings.ToLower(strings.TrimSpace(s))) {
	case ScopeAllRecords, "":
		return ScopeAllRecords, nil
	case ScopeChartWindow:
		return ScopeChartWindow, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAverageScope, s)
	}
}

// ChartSeries is the chart-ready output of one build. Labels, Values and
// Colors are index-aligned and describe the same record at each position.
type ChartSeries struct {
	Labels                  []string   `json:"labels"`
	Values                  []float64  `json:"values"`
	Colors                  []BarColor `json:"colors"`
	AverageDailyWorkedHours float64    `json:"average_daily_worked_hours"`
}

// Len returns the number of charted days.
func (s ChartSeries) Len() int {
	return len(s.Labels)
}
