package export

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/alexiusacademia/gosolrad/internal/radiation"
)

// PlotSeries is one curve of a chart and its line style
type PlotSeries struct {
	ID        radiation.SeriesID
	Title     string
	Color     string // #RRGGBB
	PointType int
	Dashed    bool
}

// ScriptSpec describes one chart: the gnuplot script that draws it and the
// image it produces.
type ScriptSpec struct {
	Script string // script file name
	Output string // image file name

	Title  string
	XLabel string
	YLabel string

	Width  int // pixels
	Height int // pixels

	Series []PlotSeries
}

// RadiationScript overlays global, diffuse and direct-beam radiation
func RadiationScript() ScriptSpec {
	return ScriptSpec{
		Script: "plot_radiation.gnu",
		Output: "radiation.png",
		Title:  "Monthly Variation of Solar Radiation",
		XLabel: "Month",
		YLabel: "Radiation (W/m²)",
		Width:  1200,
		Height: 800,
		Series: []PlotSeries{
			{ID: radiation.SeriesG, Title: "G: Total Solar Radiation", Color: "#E74C3C", PointType: 7},
			{ID: radiation.SeriesD, Title: "D: Diffuse Radiation", Color: "#27AE60", PointType: 5},
			{ID: radiation.SeriesB, Title: "B: Direct Beam (G-D)", Color: "#3498DB", PointType: 9, Dashed: true},
		},
	}
}

// VariablesScript overlays the measured inputs R, h, N and W
func VariablesScript() ScriptSpec {
	return ScriptSpec{
		Script: "plot_variables.gnu",
		Output: "variables.png",
		Title:  "Monthly Variation of Input Variables",
		XLabel: "Month",
		YLabel: "Value",
		Width:  1200,
		Height: 800,
		Series: []PlotSeries{
			{ID: radiation.SeriesR, Title: "R: Relative Humidity (%)", Color: "#E74C3C", PointType: 7},
			{ID: radiation.SeriesH, Title: "h: Bright Sunshine Hours", Color: "#3498DB", PointType: 5},
			{ID: radiation.SeriesN, Title: "N: Max Sunshine Duration", Color: "#F39C12", PointType: 9},
			{ID: radiation.SeriesW, Title: "W: Absolute Humidity", Color: "#9B59B6", PointType: 11},
		},
	}
}

// DefaultScripts are the two charts produced by every export
func DefaultScripts() []ScriptSpec {
	return []ScriptSpec{RadiationScript(), VariablesScript()}
}

const gnuplotTemplate = `set terminal pngcairo size {{.Width}},{{.Height}} enhanced font 'Arial,12'
set output '{{quote .Output}}'
set title '{{quote .Title}}' font 'Arial,16'
set xlabel '{{quote .XLabel}}' font 'Arial,12'
set ylabel '{{quote .YLabel}}' font 'Arial,12'
set grid linestyle 2 linewidth 0.5
set key outside right top
{{- range $i, $s := .Series}}
set style line {{inc $i}} lc rgb '{{$s.Color}}' lt {{if $s.Dashed}}2{{else}}1{{end}} lw 2 pt {{$s.PointType}} ps 1.5
{{- end}}
set xtics rotate by -45
plot {{range $i, $s := .Series}}{{if $i}}, \
     {{end}}'{{datafile $s.ID}}' using 0:2:xtic(1) with linespoints ls {{inc $i}} title '{{quote $s.Title}}'{{end}}
`

var scriptTemplate = template.Must(template.New("gnuplot").Funcs(template.FuncMap{
	"inc":      func(i int) int { return i + 1 },
	"datafile": DataFileName,
	"quote":    func(s string) string { return strings.ReplaceAll(s, "'", "''") },
}).Parse(gnuplotTemplate))

// WriteScript renders the gnuplot script for spec
func WriteScript(w io.Writer, spec ScriptSpec) error {
	if len(spec.Series) == 0 {
		return fmt.Errorf("script %s has no series", spec.Script)
	}
	return scriptTemplate.Execute(w, spec)
}

// WriteScripts writes every spec into dir and returns the script paths
func WriteScripts(dir string, specs []ScriptSpec) ([]string, error) {
	paths := make([]string, 0, len(specs))
	for _, spec := range specs {
		path := filepath.Join(dir, spec.Script)
		if err := writeFile(path, func(w io.Writer) error {
			return WriteScript(w, spec)
		}); err != nil {
			return nil, fmt.Errorf("writing %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
