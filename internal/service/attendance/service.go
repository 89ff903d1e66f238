package attendance

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/cmlabs-hris/hris-attendance-chart/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-chart/internal/fixtures"
	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"
)

type AttendanceChartServiceImpl struct {
	source          attendance.RecordSource
	averageScope    attendance.AverageScope
	teamConcurrency int
	now             func() time.Time
}

func NewAttendanceChartService(source attendance.RecordSource, averageScope attendance.AverageScope, teamConcurrency int) attendance.AttendanceChartService {
	if teamConcurrency < 1 {
		teamConcurrency = 1
	}
	return &AttendanceChartServiceImpl{
		source:          source,
		averageScope:    averageScope,
		teamConcurrency: teamConcurrency,
		now:             time.Now,
	}
}

// getCompanyID extracts company_id from JWT claims
func (s *AttendanceChartServiceImpl) getCompanyID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", attendance.ErrNoCompanyClaim
	}
	return companyID, nil
}

// getEmployeeID extracts employee_id from JWT claims
func (s *AttendanceChartServiceImpl) getEmployeeID(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	employeeID, ok := claims["employee_id"].(string)
	if !ok || employeeID == "" {
		return "", attendance.ErrNoEmployeeClaim
	}
	return employeeID, nil
}

// parseMonth parses YYYY-MM format, defaults to current month
func (s *AttendanceChartServiceImpl) parseMonth(month string) (int, int) {
	now := s.now()
	if month == "" {
		return now.Year(), int(now.Month())
	}

	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return now.Year(), int(now.Month())
	}
	return parsed.Year(), int(parsed.Month())
}

func formatMonth(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// BuildChart implements attendance.AttendanceChartService.
func (s *AttendanceChartServiceImpl) BuildChart(ctx context.Context, req attendance.BuildChartRequest) (attendance.ChartResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.ChartResponse{}, err
	}

	records, err := req.ToRecords()
	if err != nil {
		return attendance.ChartResponse{}, err
	}

	scope := s.averageScope
	if strings.TrimSpace(req.AverageScope) != "" {
		scope, err = attendance.ParseAverageScope(req.AverageScope)
		if err != nil {
			return attendance.ChartResponse{}, err
		}
	}

	return NewChartResponse(records, WithAverageScope(scope)), nil
}

// GetSampleChart implements attendance.AttendanceChartService.
func (s *AttendanceChartServiceImpl) GetSampleChart(ctx context.Context) (attendance.ChartResponse, error) {
	return NewChartResponse(fixtures.SampleAttendanceRecords(), WithAverageScope(s.averageScope)), nil
}

// GetMyChart implements attendance.AttendanceChartService.
func (s *AttendanceChartServiceImpl) GetMyChart(ctx context.Context, filter attendance.MonthlyChartFilter) (attendance.ChartResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.ChartResponse{}, err
	}

	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return attendance.ChartResponse{}, err
	}

	employeeID, err := s.getEmployeeID(ctx)
	if err != nil {
		return attendance.ChartResponse{}, err
	}

	year, month := s.parseMonth(filter.Month)
	return s.employeeChart(ctx, companyID, employeeID, year, month)
}

// GetTeamChart implements attendance.AttendanceChartService.
// Employees are loaded concurrently; the result keeps the request order.
// Employees outside the caller's company are reported as not found.
func (s *AttendanceChartServiceImpl) GetTeamChart(ctx context.Context, filter attendance.TeamChartFilter) (attendance.TeamChartResponse, error) {
	if err := filter.Validate(); err != nil {
		return attendance.TeamChartResponse{}, err
	}

	companyID, err := s.getCompanyID(ctx)
	if err != nil {
		return attendance.TeamChartResponse{}, err
	}

	year, month := s.parseMonth(filter.Month)
	charts := make([]attendance.ChartResponse, len(filter.EmployeeIDs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(s.teamConcurrency)
	for i, employeeID := range filter.EmployeeIDs {
		g.Go(func() error {
			chart, err := s.employeeChart(gCtx, companyID, employeeID, year, month)
			if err != nil {
				return err
			}
			charts[i] = chart
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return attendance.TeamChartResponse{}, err
	}

	return attendance.TeamChartResponse{
		Month:  formatMonth(year, month),
		Charts: charts,
	}, nil
}

func (s *AttendanceChartServiceImpl) employeeChart(ctx context.Context, companyID, employeeID string, year, month int) (attendance.ChartResponse, error) {
	records, err := s.source.ListMonthlyRecords(ctx, companyID, employeeID, year, month)
	if err != nil {
		return attendance.ChartResponse{}, fmt.Errorf("failed to load attendance records for %s: %w", employeeID, err)
	}

	chart := NewChartResponse(records, WithAverageScope(s.averageScope))
	chart.EmployeeID = employeeID
	chart.Month = formatMonth(year, month)
	return chart, nil
}
