package diagram

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg/draw"
)

func TestExportLineChart(t *testing.T) {
	calc := referenceCalculator(t)
	dir := t.TempDir()

	data := ChartData{
		Title:  "Monthly Variation of Solar Radiation",
		XLabel: "Month",
		YLabel: "Radiation",
		Months: calc.Months(),
		Series: []LineSeries{
			{Label: "G", Values: calc.G(), Color: color.RGBA{R: 231, A: 255}, Glyph: draw.CircleGlyph{}},
			{Label: "B", Values: calc.B(), Color: color.Black, Dashed: true},
		},
	}

	out, err := ExportLineChart(data, filepath.Join(dir, "sub", "radiation.png"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "sub", "radiation.png"), out)

	info, err := os.Stat(out)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	out, err = ExportLineChart(data, filepath.Join(dir, "noext"))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "noext.png"), out)
}

func TestExportLineChartErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ExportLineChart(ChartData{Title: "empty"}, filepath.Join(dir, "a.png"))
	assert.Error(t, err)

	_, err = ExportLineChart(ChartData{
		Months: []string{"Jan", "Feb"},
		Series: []LineSeries{{Label: "x", Values: []float64{1}, Color: color.Black}},
	}, filepath.Join(dir, "b.png"))
	assert.Error(t, err)
}

func TestParseHexColor(t *testing.T) {
	c, err := ParseHexColor("#E74C3C")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{R: 0xE7, G: 0x4C, B: 0x3C, A: 255}, c)

	for _, bad := range []string{"", "E74C3C", "#E74C3", "#GGGGGG"} {
		_, err := ParseHexColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, draw.CircleGlyph{}, Glyph(7))
	assert.Equal(t, draw.BoxGlyph{}, Glyph(5))
	assert.Equal(t, draw.RingGlyph{}, Glyph(42))
}
