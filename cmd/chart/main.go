package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/cmlabs-hris/hris-attendance-chart/internal/cli"
)

var CLI struct {
	Version kong.VersionFlag
	Debug   bool `help:"Enable debug logging."`

	Render cli.RenderCmd `cmd:"" help:"Draw the monthly attendance chart in the terminal." default:"1"`
	JSON   cli.JSONCmd   `cmd:"" name:"json" help:"Print the chart series as JSON."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("chart"),
		kong.Description("Monthly attendance chart for the HRIS dashboard"),
		kong.UsageOnError(),
		kong.Vars{"version": "v1.0.0"},
	)

	level := log.WarnLevel
	if CLI.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Prefix:          "chart",
	})

	err := ctx.Run(&cli.Context{Out: os.Stdout, Logger: logger})
	if err != nil {
		logger.Error("command failed", "err", err)
		os.Exit(1)
	}
}
