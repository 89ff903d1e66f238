package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/cmlabs-hris/hris-attendance-chart/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-chart/internal/handler/http/response"
	"github.com/cmlabs-hris/hris-attendance-chart/internal/pkg/validator"
)

const maxBuildBodyBytes = 1 << 20

type AttendanceChartHandler interface {
	// Build handles POST /attendance/chart
	Build(w http.ResponseWriter, r *http.Request)
	// GetSample handles GET /attendance/chart/sample
	GetSample(w http.ResponseWriter, r *http.Request)
	// GetMy handles GET /attendance/chart/my
	GetMy(w http.ResponseWriter, r *http.Request)
	// GetTeam handles GET /attendance/chart/team
	GetTeam(w http.ResponseWriter, r *http.Request)
}

type attendanceChartHandlerImpl struct {
	service attendance.AttendanceChartService
}

func NewAttendanceChartHandler(service attendance.AttendanceChartService) AttendanceChartHandler {
	return &attendanceChartHandlerImpl{service: service}
}

// Build derives a chart from the records in the request body.
// Body: {"records": [{"type": "Present", "check_in": "09:00", "check_out": "17:30"}], "average_scope": "all"}
func (h *attendanceChartHandlerImpl) Build(w http.ResponseWriter, r *http.Request) {
	var req attendance.BuildChartRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxBuildBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Debug("Failed to decode chart request", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.service.BuildChart(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetSample returns the chart of the built-in sample month.
func (h *attendanceChartHandlerImpl) GetSample(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetSampleChart(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetMy returns the authenticated employee's chart.
// Query params:
//   - month: YYYY-MM (default: current month)
func (h *attendanceChartHandlerImpl) GetMy(w http.ResponseWriter, r *http.Request) {
	filter := attendance.MonthlyChartFilter{
		Month: r.URL.Query().Get("month"),
	}

	result, err := h.service.GetMyChart(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetTeam returns one chart per employee.
// Query params:
//   - employee_ids: comma separated employee UUIDs
//   - month: YYYY-MM (default: current month)
func (h *attendanceChartHandlerImpl) GetTeam(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := attendance.TeamChartFilter{
		EmployeeIDs: validator.SplitCSV(query.Get("employee_ids")),
		Month:       query.Get("month"),
	}

	result, err := h.service.GetTeamChart(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
