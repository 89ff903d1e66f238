package attendance

import (
	"context"
)

// AttendanceChartService defines business logic for the monthly attendance chart
type AttendanceChartService interface {
	// BuildChart derives a chart from caller-supplied records
	BuildChart(ctx context.Context, req BuildChartRequest) (ChartResponse, error)

	// GetSampleChart returns the chart for the built-in sample month
	GetSampleChart(ctx context.Context) (ChartResponse, error)

	// GetMyChart returns the chart of the authenticated employee for a month
	GetMyChart(ctx context.Context, filter MonthlyChartFilter) (ChartResponse, error)

	// GetTeamChart returns one chart per employee for a month (manager/owner)
	GetTeamChart(ctx context.Context, filter TeamChartFilter) (TeamChartResponse, error)
}
