package attendance

import (
	"fmt"
	"time"

	"github.com/cmlabs-hris/hris-attendance-chart/internal/pkg/validator"
	"github.com/google/uuid"
)

// MaxRequestRecords caps the number of records accepted in a single build request.
const MaxRequestRecords = 100

// MaxTeamSize caps the number of employees in a team chart request.
const MaxTeamSize = 50

// ========================================
// REQUEST DTOs
// ========================================

type RecordInput struct {
	Type     string  `json:"type"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
}

type BuildChartRequest struct {
	Records      []RecordInput `json:"records"`
	AverageScope string        `json:"average_scope,omitempty"` // all, window
}

func (r *BuildChartRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.Records) > MaxRequestRecords {
		errs = append(errs, validator.ValidationError{
			Field:   "records",
			Message: fmt.Sprintf("records must not exceed %d entries", MaxRequestRecords),
		})
	}

	for i, rec := range r.Records {
		field := fmt.Sprintf("records[%d]", i)
		dayType, err := ParseDayType(rec.Type)
		if err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".type",
				Message: "type must be one of Present, Absent, Leave, Rest Day",
			})
			continue
		}
		if dayType != DayPresent && (rec.CheckIn != nil || rec.CheckOut != nil) {
			errs = append(errs, validator.ValidationError{
				Field:   field + ".check_in",
				Message: "check_in and check_out are only allowed on Present days",
			})
		}
	}

	if _, err := ParseAverageScope(r.AverageScope); err != nil {
		errs = append(errs, validator.ValidationError{
			Field:   "average_scope",
			Message: "average_scope must be one of all, window",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ToRecords converts validated input into domain records.
func (r *BuildChartRequest) ToRecords() ([]Record, error) {
	records := make([]Record, 0, len(r.Records))
	for _, in := range r.Records {
		dayType, err := ParseDayType(in.Type)
		if err != nil {
			return nil, err
		}
		rec, err := NewRecord(dayType, in.CheckIn, in.CheckOut)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

type MonthlyChartFilter struct {
	Month string `json:"month"` // YYYY-MM, default current month
}

func (f *MonthlyChartFilter) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsEmpty(f.Month) {
		if _, err := time.Parse("2006-01", f.Month); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type TeamChartFilter struct {
	EmployeeIDs []string `json:"employee_ids"`
	Month       string   `json:"month"`
}

func (f *TeamChartFilter) Validate() error {
	var errs validator.ValidationErrors

	if len(f.EmployeeIDs) == 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_ids",
			Message: "employee_ids is required",
		})
	} else if len(f.EmployeeIDs) > MaxTeamSize {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_ids",
			Message: fmt.Sprintf("employee_ids must not exceed %d entries", MaxTeamSize),
		})
	}

	for _, id := range f.EmployeeIDs {
		if _, err := uuid.Parse(id); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "employee_ids",
				Message: fmt.Sprintf("invalid employee id %q", id),
			})
			break
		}
	}

	if !validator.IsEmpty(f.Month) {
		if _, err := time.Parse("2006-01", f.Month); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   "month",
				Message: "month must be in YYYY-MM format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ========================================
// RESPONSE DTOs
// ========================================

// ChartResponse is everything the dashboard needs to draw the monthly chart
// and the average-time card.
type ChartResponse struct {
	EmployeeID string         `json:"employee_id,omitempty"`
	Month      string         `json:"month,omitempty"` // Format: "YYYY-MM"
	Series     ChartSeries    `json:"series"`
	Config     ChartConfig    `json:"config"`
	Average    AverageDisplay `json:"average"`
	Summary    DaySummary     `json:"summary"`
}

type TeamChartResponse struct {
	Month  string          `json:"month"`
	Charts []ChartResponse `json:"charts"`
}

// AverageDisplay is the formatted average daily worked time.
type AverageDisplay struct {
	Value float64  `json:"value"`
	Text  string   `json:"text"` // Format: "8.13 hours"
	Color BarColor `json:"color"`
}

// DaySummary counts charted days per type.
type DaySummary struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Leave   int `json:"leave"`
	RestDay int `json:"rest_day"`
}

// ========== CHART.JS CONFIG ==========
// Keys follow Chart.js naming so the frontend can pass the config through.

type ChartConfig struct {
	Type    string       `json:"type"`
	Data    ChartData    `json:"data"`
	Options ChartOptions `json:"options"`
}

type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
}

type ChartDataset struct {
	Label              string     `json:"label"`
	Data               []float64  `json:"data"`
	BackgroundColor    []BarColor `json:"backgroundColor"`
	BorderRadius       int        `json:"borderRadius"`
	BarPercentage      float64    `json:"barPercentage"`
	CategoryPercentage float64    `json:"categoryPercentage"`
}

type ChartOptions struct {
	Responsive          bool         `json:"responsive"`
	MaintainAspectRatio bool         `json:"maintainAspectRatio"`
	Plugins             ChartPlugins `json:"plugins"`
	Scales              ChartScales  `json:"scales"`
}

type ChartPlugins struct {
	Legend  LegendOptions  `json:"legend"`
	Tooltip TooltipOptions `json:"tooltip"`
}

type LegendOptions struct {
	Display bool `json:"display"`
}

// TooltipOptions carries one precomputed tooltip per bar, index-aligned
// with the dataset.
type TooltipOptions struct {
	Items []TooltipItem `json:"items"`
}

type TooltipItem struct {
	Title string `json:"title"`
	Label string `json:"label"`
}

type ChartScales struct {
	Y AxisOptions `json:"y"`
	X AxisOptions `json:"x"`
}

type AxisOptions struct {
	BeginAtZero bool         `json:"beginAtZero,omitempty"`
	Max         *float64     `json:"max,omitempty"`
	Ticks       *TickOptions `json:"ticks,omitempty"`
	Title       AxisTitle    `json:"title"`
	Grid        *GridOptions `json:"grid,omitempty"`
}

type TickOptions struct {
	StepSize float64     `json:"stepSize"`
	Labels   []TickLabel `json:"labels"`
}

type TickLabel struct {
	Value float64 `json:"value"`
	Label string  `json:"label"`
}

type AxisTitle struct {
	Display bool   `json:"display"`
	Text    string `json:"text"`
}

type GridOptions struct {
	Display bool `json:"display"`
}
