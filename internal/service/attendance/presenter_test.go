package attendance

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cmlabs-hris/hris-attendance-chart/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-chart/internal/fixtures"
)

func TestTooltipLabel(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{10, "Status: Leave or Rest Day (Blue)"},
		{0, "Status: Absent (Red)"},
		{8.5, "Hours: 8.50h (Target Met (Green))"},
		{8, "Hours: 8.00h (Target Met (Green))"},
		{7.75, "Hours: 7.75h (Short (Yellow))"},
		{1.0 / 60, "Hours: 0.02h (Short (Yellow))"},
		{9.25, "Hours: 9.25h (Target Met (Green))"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TooltipLabel(c.value), "TooltipLabel(%v)", c.value)
	}
}

func TestTooltipTitle(t *testing.T) {
	assert.Equal(t, "Day 07", TooltipTitle("07"))
}

func TestTickLabel(t *testing.T) {
	cases := []struct {
		value float64
		want  string
	}{
		{0, "Absent"},
		{2, "2h"},
		{6, "6h"},
		{8, "8h Target"},
		{10, "Leave/Rest Day"},
		{10.5, "10.5h"},
		{-2, ""},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TickLabel(c.value), "TickLabel(%v)", c.value)
	}
}

func TestFormatFixed2(t *testing.T) {
	// expected values match Number.prototype.toFixed(2)
	tests := []struct {
		value float64
		want  string
	}{
		{8.125, "8.13"},
		{0.125, "0.13"},
		{sampleTotalHours / 17, "8.13"},
		{0, "0.00"},
		{7, "7.00"},
		{0.075, "0.07"},
		{0.175, "0.17"},
		{0.425, "0.42"},
		{1.005, "1.00"},
		{2.675, "2.67"},
		{10, "10.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatFixed2(tt.value), "formatFixed2(%v)", tt.value)
	}
}

func TestNewAverageDisplay(t *testing.T) {
	met := NewAverageDisplay(sampleTotalHours / 17)
	assert.Equal(t, "8.13 hours", met.Text)
	assert.Equal(t, attendance.ColorTargetMet, met.Color)

	boundary := NewAverageDisplay(8)
	assert.Equal(t, "8.00 hours", boundary.Text)
	assert.Equal(t, attendance.ColorTargetMet, boundary.Color)

	short := NewAverageDisplay(7.9)
	assert.Equal(t, "7.90 hours", short.Text)
	assert.Equal(t, attendance.ColorShort, short.Color)

	zero := NewAverageDisplay(0)
	assert.Equal(t, "0.00 hours", zero.Text)
	assert.Equal(t, attendance.ColorShort, zero.Color)
}

func TestBuildChartConfig(t *testing.T) {
	series := BuildChartSeries(fixtures.SampleAttendanceRecords())

	cfg := BuildChartConfig(series)

	assert.Equal(t, "bar", cfg.Type)
	assert.Equal(t, series.Labels, cfg.Data.Labels)
	require.Len(t, cfg.Data.Datasets, 1)
	ds := cfg.Data.Datasets[0]
	assert.Equal(t, "Hours Worked", ds.Label)
	assert.Equal(t, series.Values, ds.Data)
	assert.Equal(t, series.Colors, ds.BackgroundColor)
	assert.Equal(t, 6, ds.BorderRadius)

	require.Len(t, cfg.Options.Plugins.Tooltip.Items, 30)
	assert.Equal(t, attendance.TooltipItem{Title: "Day 01", Label: "Hours: 8.50h (Target Met (Green))"}, cfg.Options.Plugins.Tooltip.Items[0])
	assert.Equal(t, attendance.TooltipItem{Title: "Day 09", Label: "Status: Absent (Red)"}, cfg.Options.Plugins.Tooltip.Items[8])

	require.NotNil(t, cfg.Options.Scales.Y.Max)
	assert.Equal(t, 10.5, *cfg.Options.Scales.Y.Max)
	require.NotNil(t, cfg.Options.Scales.Y.Ticks)
	assert.Equal(t, []attendance.TickLabel{
		{Value: 0, Label: "Absent"},
		{Value: 2, Label: "2h"},
		{Value: 4, Label: "4h"},
		{Value: 6, Label: "6h"},
		{Value: 8, Label: "8h Target"},
		{Value: 10, Label: "Leave/Rest Day"},
		{Value: 10.5, Label: "10.5h"},
	}, cfg.Options.Scales.Y.Ticks.Labels)
	assert.Equal(t, "Day of the Month", cfg.Options.Scales.X.Title.Text)
	assert.False(t, cfg.Options.Plugins.Legend.Display)
}

func TestBuildChartConfig_JSONKeys(t *testing.T) {
	cfg := BuildChartConfig(BuildChartSeries([]attendance.Record{attendance.AbsentRecord()}))

	raw, err := json.Marshal(cfg)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	options := decoded["options"].(map[string]interface{})
	assert.Equal(t, false, options["maintainAspectRatio"])

	dataset := decoded["data"].(map[string]interface{})["datasets"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, []interface{}{"#d83b13"}, dataset["backgroundColor"])
	assert.Equal(t, 0.9, dataset["barPercentage"])
}

func TestNewChartResponse(t *testing.T) {
	resp := NewChartResponse(fixtures.SampleAttendanceRecords())

	assert.Equal(t, 30, resp.Series.Len())
	assert.Equal(t, "8.13 hours", resp.Average.Text)
	assert.Equal(t, attendance.DaySummary{Total: 30, Present: 17, Absent: 3, Leave: 2, RestDay: 8}, resp.Summary)
	assert.Empty(t, resp.EmployeeID)
}
