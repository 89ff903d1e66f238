package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/cmlabs-hris/hris-attendance-chart/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-attendance-chart/internal/fixtures"
	"github.com/cmlabs-hris/hris-attendance-chart/internal/render/terminal"
	attendanceService "github.com/cmlabs-hris/hris-attendance-chart/internal/service/attendance"
)

type Context struct {
	Out    io.Writer
	Logger *log.Logger
}

// SourceFlags selects the records a command charts.
type SourceFlags struct {
	File  string `help:"JSON file with {\"records\": [...]}; the sample month is used when empty." type:"path" short:"f"`
	Scope string `help:"Records averaged: all or window." enum:"all,window" default:"all"`
}

func (s SourceFlags) load(logger *log.Logger) ([]attendance.Record, attendance.AverageScope, error) {
	scope, err := attendance.ParseAverageScope(s.Scope)
	if err != nil {
		return nil, "", err
	}

	if s.File == "" {
		logger.Debug("using sample attendance month")
		return fixtures.SampleAttendanceRecords(), scope, nil
	}

	f, err := os.Open(s.File)
	if err != nil {
		return nil, "", fmt.Errorf("open records file: %w", err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", s.File, err)
	}
	logger.Debug("loaded attendance records", "file", s.File, "count", len(records))
	return records, scope, nil
}

// ReadRecords decodes and validates a {"records": [...]} document.
func ReadRecords(r io.Reader) ([]attendance.Record, error) {
	var req attendance.BuildChartRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return nil, fmt.Errorf("decode records: %w", err)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return req.ToRecords()
}

type RenderCmd struct {
	SourceFlags
	Width int `help:"Cells used for the 10.5h axis." default:"40"`
}

func (c *RenderCmd) Run(ctx *Context) error {
	records, scope, err := c.load(ctx.Logger)
	if err != nil {
		return err
	}

	resp := attendanceService.NewChartResponse(records, attendanceService.WithAverageScope(scope))
	_, err = io.WriteString(ctx.Out, terminal.Render(resp, c.Width))
	return err
}

type JSONCmd struct {
	SourceFlags
	Config bool `help:"Include the Chart.js config."`
}

func (c *JSONCmd) Run(ctx *Context) error {
	records, scope, err := c.load(ctx.Logger)
	if err != nil {
		return err
	}

	resp := attendanceService.NewChartResponse(records, attendanceService.WithAverageScope(scope))

	enc := json.NewEncoder(ctx.Out)
	enc.SetIndent("", "  ")
	if c.Config {
		return enc.Encode(resp)
	}
	return enc.Encode(resp.Series)
}
