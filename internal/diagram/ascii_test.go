package diagram

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexiusacademia/gosolrad/internal/dataset"
	"github.com/alexiusacademia/gosolrad/internal/radiation"
)

func referenceCalculator(t *testing.T) *radiation.Calculator {
	t.Helper()
	calc, err := radiation.New(dataset.Reference())
	require.NoError(t, err)
	return calc
}

func TestRenderTable(t *testing.T) {
	out := RenderTable(referenceCalculator(t))
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 14)

	assert.Equal(t, "Month       G0        h        N        W        R        G        D        B", lines[0])
	assert.Equal(t, "  Jan   575.23     8.29     9.82    10.96    70.67   227.33   183.62    43.71", lines[2])
	assert.Equal(t, "  Jun  1026.65     4.23    12.73    22.08    86.70   405.25   366.40    38.85", lines[7])

	for _, l := range lines[2:] {
		assert.Len(t, l, monthColumn+valueColumn*len(tableHeader))
	}
}

func TestBarLengthsReference(t *testing.T) {
	calc := referenceCalculator(t)

	bars, err := BarLengths(calc.G(), DefaultChartWidth)
	require.NoError(t, err)
	assert.Equal(t, []int{33, 40, 47, 54, 58, 60, 59, 56, 49, 41, 34, 31}, bars)
}

func TestBarLengthsMonotonic(t *testing.T) {
	values := []float64{3.5, 0.1, 7.25, 7.2, 1e-9, 4, 100, 99.99}
	bars, err := BarLengths(values, 40)
	require.NoError(t, err)

	for i := range values {
		for j := range values {
			if values[i] > values[j] {
				assert.GreaterOrEqual(t, bars[i], bars[j], "values %v > %v", values[i], values[j])
			}
		}
	}
	assert.Equal(t, 40, bars[6])
}

func TestBarLengthsNegativeClamped(t *testing.T) {
	bars, err := BarLengths([]float64{-5, 10}, 10)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 10}, bars)
}

func TestBarLengthsNonPositiveMaximum(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
	}{
		{"all zero", []float64{0, 0, 0}},
		{"all negative", []float64{-1, -2, -3}},
		{"negative and zero", []float64{-4, 0, -0.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bars, err := BarLengths(tt.values, DefaultChartWidth)
			assert.Nil(t, bars)

			var domain *radiation.DomainError
			assert.True(t, errors.As(err, &domain), "got %v", err)
		})
	}
}

func TestBarLengthsInvalid(t *testing.T) {
	var invalid *radiation.InvalidInputError

	_, err := BarLengths([]float64{1, 2}, 0)
	assert.True(t, errors.As(err, &invalid))

	_, err = BarLengths(nil, 10)
	assert.True(t, errors.As(err, &invalid))
}

func TestDrawRadiationChart(t *testing.T) {
	out, err := DrawRadiationChart(referenceCalculator(t), DefaultChartWidth)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "Jan │ "+strings.Repeat("█", 33)+" 227.33", lines[0])
	assert.Equal(t, "Jun │ "+strings.Repeat("█", 60)+" 405.25", lines[5])
}

func TestDrawBarChartMismatch(t *testing.T) {
	_, err := DrawBarChart([]string{"a"}, []float64{1, 2}, 10)
	var invalid *radiation.InvalidInputError
	assert.True(t, errors.As(err, &invalid))
}

func TestDrawLineChart(t *testing.T) {
	out := DrawLineChart(referenceCalculator(t), 10)
	assert.NotEmpty(t, out)
	assert.Contains(t, out, "G, D, B by month")
}

func TestDrawSummaryBox(t *testing.T) {
	out := DrawSummaryBox("ANNUAL", []string{"short", "a much longer line"})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 5)

	width := len([]rune(lines[0]))
	for _, l := range lines {
		assert.Equal(t, width, len([]rune(l)), l)
	}
	assert.Contains(t, lines[1], "ANNUAL")
}

func TestSummaryLines(t *testing.T) {
	calc := referenceCalculator(t)
	s, err := calc.Summary(radiation.SeriesG)
	require.NoError(t, err)

	lines := SummaryLines([]*radiation.Summary{s})
	require.Len(t, lines, 1)
	assert.True(t, strings.HasPrefix(lines[0], "G "))
	assert.Contains(t, lines[0], "(Jun)")
	assert.Contains(t, lines[0], "(Dec)")
}
