// Package terminal draws an attendance chart as horizontal bars for a
// terminal, one row per day.
package terminal

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cmlabs-hris/hris-attendance-chart/internal/domain/attendance"
	attendanceService "github.com/cmlabs-hris/hris-attendance-chart/internal/service/attendance"
)

const (
	DefaultWidth = 40
	scaleMax     = 10.5
	barRune      = "█"
)

var (
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(3)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			MarginBottom(1)
)

func colorStyle(c attendance.BarColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(string(c)))
}

// barWidth scales a value onto width cells. Positive values always get at
// least one cell so short days stay visible.
func barWidth(value float64, width int) int {
	if value <= 0 || width <= 0 {
		return 0
	}
	cells := int(math.Round(value / scaleMax * float64(width)))
	return min(max(cells, 1), width)
}

// Render returns the chart as text. width is the cell count of the 10.5h
// axis; values below 1 fall back to DefaultWidth.
func Render(resp attendance.ChartResponse, width int) string {
	if width < 1 {
		width = DefaultWidth
	}

	var b strings.Builder
	b.WriteString(headerStyle.Render("Monthly Attendance Performance"))
	b.WriteString("\n")

	series := resp.Series
	if series.Len() == 0 {
		b.WriteString("  No attendance records\n")
	}
	for i, label := range series.Labels {
		value := series.Values[i]
		bar := strings.Repeat(barRune, barWidth(value, width))
		pad := strings.Repeat(" ", width-barWidth(value, width))
		fmt.Fprintf(&b, "%s %s%s  %s\n",
			labelStyle.Render(label),
			colorStyle(series.Colors[i]).Render(bar),
			pad,
			attendanceService.TooltipLabel(value),
		)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "Average daily time: %s\n", colorStyle(resp.Average.Color).Render(resp.Average.Text))
	fmt.Fprintf(&b, "Present %d · Absent %d · Leave %d · Rest Day %d\n",
		resp.Summary.Present, resp.Summary.Absent, resp.Summary.Leave, resp.Summary.RestDay)

	return b.String()
}
