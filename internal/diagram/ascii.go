package diagram

import (
	"fmt"
	"math"
	"strings"

	"github.com/guptarohit/asciigraph"
	"gonum.org/v1/gonum/floats"

	"github.com/alexiusacademia/gosolrad/internal/radiation"
)

// DefaultChartWidth is the bar length of the largest month
const DefaultChartWidth = 60

// Column widths of the monthly table
const (
	monthColumn = 5
	valueColumn = 9
)

var tableHeader = []string{"G0", "h", "N", "W", "R", "G", "D", "B"}

// RenderTable formats the monthly inputs and derived radiation as a fixed-width table
func RenderTable(calc *radiation.Calculator) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%*s", monthColumn, "Month"))
	for _, h := range tableHeader {
		sb.WriteString(fmt.Sprintf("%*s", valueColumn, h))
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("─", monthColumn+valueColumn*len(tableHeader)))
	sb.WriteString("\n")

	columns := []radiation.MonthlySeries{
		calc.G0(), calc.H(), calc.N(), calc.W(), calc.R(),
		calc.G(), calc.D(), calc.B(),
	}
	for i, month := range calc.Months() {
		sb.WriteString(fmt.Sprintf("%*s", monthColumn, month))
		for _, col := range columns {
			sb.WriteString(fmt.Sprintf("%*.2f", valueColumn, col[i]))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// BarLengths scales values so the largest maps to width characters.
// A maximum of zero or below cannot be scaled and is reported as a
// DomainError. Negative values next to a positive maximum get empty bars.
func BarLengths(values []float64, width int) ([]int, error) {
	if width <= 0 {
		return nil, &radiation.InvalidInputError{Field: "width", Msg: fmt.Sprintf("chart width must be positive, got %d", width)}
	}
	if len(values) == 0 {
		return nil, &radiation.InvalidInputError{Field: "values", Msg: "nothing to chart"}
	}

	maxV := floats.Max(values)
	if maxV <= 0 {
		return nil, &radiation.DomainError{Op: "bar chart", Msg: fmt.Sprintf("maximum value %.2f is not positive", maxV)}
	}

	bars := make([]int, len(values))
	for i, v := range values {
		n := int(math.Floor(v / maxV * float64(width)))
		if n < 0 {
			n = 0
		}
		bars[i] = n
	}
	return bars, nil
}

// DrawBarChart draws one horizontal bar per label followed by its value
func DrawBarChart(labels []string, values []float64, width int) (string, error) {
	if len(labels) != len(values) {
		return "", &radiation.InvalidInputError{Field: "labels", Msg: fmt.Sprintf("%d labels for %d values", len(labels), len(values))}
	}

	bars, err := BarLengths(values, width)
	if err != nil {
		return "", err
	}

	labelWidth := 0
	for _, l := range labels {
		labelWidth = max(labelWidth, len(l))
	}

	var sb strings.Builder
	for i, l := range labels {
		sb.WriteString(fmt.Sprintf("%-*s │ %s %.2f\n", labelWidth, l, strings.Repeat("█", bars[i]), values[i]))
	}
	return sb.String(), nil
}

// DrawRadiationChart draws the global radiation of each month as a bar chart
func DrawRadiationChart(calc *radiation.Calculator, width int) (string, error) {
	return DrawBarChart(calc.Months(), calc.G(), width)
}

// DrawLineChart overlays G, D and B as a terminal line chart
func DrawLineChart(calc *radiation.Calculator, height int) string {
	data := [][]float64{calc.G(), calc.D(), calc.B()}
	return asciigraph.PlotMany(data,
		asciigraph.Height(height),
		asciigraph.Precision(1),
		asciigraph.Caption("G, D, B by month (Jan..Dec)"),
	)
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := len([]rune(title))
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// SummaryLines formats annual statistics, one line per series
func SummaryLines(summaries []*radiation.Summary) []string {
	lines := make([]string, 0, len(summaries))
	for _, s := range summaries {
		lines = append(lines, fmt.Sprintf("%-2s mean %8.2f  sd %7.2f  min %8.2f (%s)  max %8.2f (%s)",
			s.ID, s.Mean, s.StdDev, s.Min, s.MinMonth, s.Max, s.MaxMonth))
	}
	return lines
}

// pad right-pads s to n runes; box-drawing glyphs are multi-byte
func pad(s string, n int) string {
	if d := n - len([]rune(s)); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}
