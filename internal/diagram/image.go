package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// LineSeries is one monthly series drawn as a line with point markers
type LineSeries struct {
	Label  string
	Values []float64
	Color  color.Color
	Glyph  draw.GlyphDrawer
	Dashed bool
}

// ChartData holds everything needed to draw a monthly line chart
type ChartData struct {
	Title  string
	XLabel string
	YLabel string

	Months []string
	Series []LineSeries

	// Output size; zero means 12x8 inches
	Width  vg.Length
	Height vg.Length
}

// ExportLineChart draws the series against the month labels and saves the
// image. The format follows the file extension (png, svg, pdf); files
// without a known extension get .png appended.
func ExportLineChart(data ChartData, filename string) (string, error) {
	if len(data.Series) == 0 {
		return "", fmt.Errorf("chart %q has no series", data.Title)
	}

	p := plot.New()
	p.Title.Text = data.Title
	p.X.Label.Text = data.XLabel
	p.Y.Label.Text = data.YLabel
	p.Legend.Top = true
	p.NominalX(data.Months...)

	grid := plotter.NewGrid()
	grid.Vertical.Color = color.Gray{Y: 200}
	grid.Horizontal.Color = color.Gray{Y: 200}
	p.Add(grid)

	for _, s := range data.Series {
		if len(s.Values) != len(data.Months) {
			return "", fmt.Errorf("series %q has %d values for %d months", s.Label, len(s.Values), len(data.Months))
		}

		pts := make(plotter.XYs, len(s.Values))
		for i, v := range s.Values {
			pts[i] = plotter.XY{X: float64(i), Y: v}
		}

		line, points, err := plotter.NewLinePoints(pts)
		if err != nil {
			return "", err
		}
		line.LineStyle.Width = vg.Points(2)
		line.LineStyle.Color = s.Color
		if s.Dashed {
			line.LineStyle.Dashes = []vg.Length{vg.Points(6), vg.Points(3)}
		}
		points.GlyphStyle.Color = s.Color
		points.GlyphStyle.Radius = vg.Points(4)
		if s.Glyph != nil {
			points.GlyphStyle.Shape = s.Glyph
		}

		p.Add(line, points)
		p.Legend.Add(s.Label, line, points)
	}

	width, height := data.Width, data.Height
	if width == 0 {
		width = 12 * vg.Inch
	}
	if height == 0 {
		height = 8 * vg.Inch
	}

	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
	default:
		filename += ".png"
	}
	if err := p.Save(width, height, filename); err != nil {
		return "", err
	}
	return filename, nil
}

// ParseHexColor converts a "#RRGGBB" string into a color
func ParseHexColor(s string) (color.Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return nil, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// Glyph maps a gnuplot point type to the closest gonum glyph
func Glyph(pointType int) draw.GlyphDrawer {
	switch pointType {
	case 5:
		return draw.BoxGlyph{}
	case 7:
		return draw.CircleGlyph{}
	case 9:
		return draw.PyramidGlyph{}
	case 11:
		return draw.TriangleGlyph{}
	}
	return draw.RingGlyph{}
}
