package attendance

import (
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/cmlabs-hris/hris-attendance-chart/internal/domain/attendance"
)

const (
	chartYAxisMax  = 10.5
	chartYAxisStep = 2.0
)

// formatFixed2 renders v with two decimals the way the dashboard's
// toFixed(2) does: the exact binary value is rounded half away from zero,
// so 0.075 (stored as 0.07499...) gives "0.07".
func formatFixed2(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', 2, 64)
	}
	// 1074 digits hold the full expansion of any float64
	exact := decimal.RequireFromString(strconv.FormatFloat(v, 'f', 1074, 64))
	return exact.StringFixed(2)
}

// TooltipTitle is the tooltip heading of a bar.
func TooltipTitle(label string) string {
	return "Day " + label
}

// TooltipLabel describes a bar value. The sentinel and zero values are
// matched before any hours formatting, so a present day clamped to zero
// reads as absent.
func TooltipLabel(value float64) string {
	if value == SpecialDayValue {
		return "Status: Leave or Rest Day (Blue)"
	}
	if value == 0 {
		return "Status: Absent (Red)"
	}
	qualifier := "Short (Yellow)"
	if value >= TargetHours {
		qualifier = "Target Met (Green)"
	}
	return fmt.Sprintf("Hours: %sh (%s)", formatFixed2(value), qualifier)
}

// TickLabel is the y-axis tick text for a value.
func TickLabel(value float64) string {
	switch {
	case value == TargetHours:
		return "8h Target"
	case value == SpecialDayValue:
		return "Leave/Rest Day"
	case value > 0:
		return strconv.FormatFloat(value, 'f', -1, 64) + "h"
	case value == 0:
		return "Absent"
	default:
		return ""
	}
}

// NewAverageDisplay formats the average daily worked time for the summary card.
func NewAverageDisplay(average float64) attendance.AverageDisplay {
	color := attendance.ColorShort
	if average >= TargetHours {
		color = attendance.ColorTargetMet
	}
	return attendance.AverageDisplay{
		Value: average,
		Text:  formatFixed2(average) + " hours",
		Color: color,
	}
}

// BuildChartConfig turns a series into a Chart.js bar chart config. Tooltip
// and tick callbacks are evaluated here because functions do not serialise.
func BuildChartConfig(series attendance.ChartSeries) attendance.ChartConfig {
	tooltips := make([]attendance.TooltipItem, 0, series.Len())
	for i, label := range series.Labels {
		tooltips = append(tooltips, attendance.TooltipItem{
			Title: TooltipTitle(label),
			Label: TooltipLabel(series.Values[i]),
		})
	}

	var ticks []attendance.TickLabel
	for v := 0.0; v <= chartYAxisMax; v += chartYAxisStep {
		ticks = append(ticks, attendance.TickLabel{Value: v, Label: TickLabel(v)})
	}
	// Chart.js also draws a tick at the axis max
	ticks = append(ticks, attendance.TickLabel{Value: chartYAxisMax, Label: TickLabel(chartYAxisMax)})

	yMax := chartYAxisMax
	return attendance.ChartConfig{
		Type: "bar",
		Data: attendance.ChartData{
			Labels: series.Labels,
			Datasets: []attendance.ChartDataset{{
				Label:              "Hours Worked",
				Data:               series.Values,
				BackgroundColor:    series.Colors,
				BorderRadius:       6,
				BarPercentage:      0.9,
				CategoryPercentage: 0.8,
			}},
		},
		Options: attendance.ChartOptions{
			Responsive:          true,
			MaintainAspectRatio: false,
			Plugins: attendance.ChartPlugins{
				Legend:  attendance.LegendOptions{Display: false},
				Tooltip: attendance.TooltipOptions{Items: tooltips},
			},
			Scales: attendance.ChartScales{
				Y: attendance.AxisOptions{
					BeginAtZero: true,
					Max:         &yMax,
					Ticks:       &attendance.TickOptions{StepSize: chartYAxisStep, Labels: ticks},
					Title:       attendance.AxisTitle{Display: true, Text: "Hours Worked"},
				},
				X: attendance.AxisOptions{
					Title: attendance.AxisTitle{Display: true, Text: "Day of the Month"},
					Grid:  &attendance.GridOptions{Display: false},
				},
			},
		},
	}
}

// NewChartResponse bundles a series with its config, average card and day counts.
func NewChartResponse(records []attendance.Record, opts ...BuildOption) attendance.ChartResponse {
	series := BuildChartSeries(records, opts...)
	return attendance.ChartResponse{
		Series:  series,
		Config:  BuildChartConfig(series),
		Average: NewAverageDisplay(series.AverageDailyWorkedHours),
		Summary: SummarizeDays(records),
	}
}
