package export

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gosolrad/internal/diagram"
	"github.com/alexiusacademia/gosolrad/internal/log"
	"github.com/alexiusacademia/gosolrad/internal/radiation"
)

// Job is everything a renderer may need to produce the chart images
type Job struct {
	Dir   string
	Calc  *radiation.Calculator
	Specs []ScriptSpec
}

// ChartRenderer turns chart specs into image files and returns their paths
type ChartRenderer interface {
	Render(ctx context.Context, job Job) ([]string, error)
}

// ExternalToolError reports that the chart renderer could not run or failed
type ExternalToolError struct {
	Tool   string
	Script string
	Stderr string
	Err    error
}

func (e *ExternalToolError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Tool)
	if e.Script != "" {
		sb.WriteString(" " + e.Script)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	if s := strings.TrimSpace(e.Stderr); s != "" {
		sb.WriteString(": " + s)
	}
	return sb.String()
}

func (e *ExternalToolError) Unwrap() error { return e.Err }

// GnuplotRenderer runs gnuplot once per script inside the job directory
type GnuplotRenderer struct {
	Path string // executable name or path, "gnuplot" when empty
}

func (g *GnuplotRenderer) Render(ctx context.Context, job Job) ([]string, error) {
	tool := g.Path
	if tool == "" {
		tool = "gnuplot"
	}

	bin, err := exec.LookPath(tool)
	if err != nil {
		return nil, &ExternalToolError{Tool: tool, Err: err}
	}

	var images []string
	var errs []error
	for _, spec := range job.Specs {
		var stderr bytes.Buffer
		cmd := exec.CommandContext(ctx, bin, spec.Script)
		cmd.Dir = job.Dir
		cmd.Stderr = &stderr

		log.Debugf("running %s %s in %s", bin, spec.Script, job.Dir)
		if err := cmd.Run(); err != nil {
			errs = append(errs, &ExternalToolError{Tool: tool, Script: spec.Script, Stderr: stderr.String(), Err: err})
			continue
		}
		images = append(images, filepath.Join(job.Dir, spec.Output))
	}
	return images, errors.Join(errs...)
}

// PlotRenderer draws the charts natively with gonum/plot, no external tool needed
type PlotRenderer struct{}

func (PlotRenderer) Render(ctx context.Context, job Job) ([]string, error) {
	if job.Calc == nil {
		return nil, &ExternalToolError{Tool: "plot", Err: errors.New("no data to render")}
	}

	var images []string
	for _, spec := range job.Specs {
		if err := ctx.Err(); err != nil {
			return images, err
		}

		data, err := chartData(job.Calc, spec)
		if err != nil {
			return images, err
		}
		out, err := diagram.ExportLineChart(data, filepath.Join(job.Dir, spec.Output))
		if err != nil {
			return images, &ExternalToolError{Tool: "plot", Script: spec.Script, Err: err}
		}
		images = append(images, out)
	}
	return images, nil
}

func chartData(calc *radiation.Calculator, spec ScriptSpec) (diagram.ChartData, error) {
	data := diagram.ChartData{
		Title:  spec.Title,
		XLabel: spec.XLabel,
		YLabel: spec.YLabel,
		Months: calc.Months(),
	}
	for _, s := range spec.Series {
		values, err := calc.Series(s.ID)
		if err != nil {
			return data, err
		}
		c, err := diagram.ParseHexColor(s.Color)
		if err != nil {
			return data, fmt.Errorf("series %s: %w", s.ID, err)
		}
		data.Series = append(data.Series, diagram.LineSeries{
			Label:  s.Title,
			Values: values,
			Color:  c,
			Glyph:  diagram.Glyph(s.PointType),
			Dashed: s.Dashed,
		})
	}
	return data, nil
}

// NopRenderer writes no images; scripts and data are left for the user
type NopRenderer struct{}

func (NopRenderer) Render(context.Context, Job) ([]string, error) { return nil, nil }

// NewRenderer selects a renderer by name: gnuplot, native or none
func NewRenderer(name, gnuplotPath string) (ChartRenderer, error) {
	switch name {
	case "", "gnuplot":
		return &GnuplotRenderer{Path: gnuplotPath}, nil
	case "native":
		return PlotRenderer{}, nil
	case "none":
		return NopRenderer{}, nil
	}
	return nil, fmt.Errorf("unknown renderer %q (want gnuplot, native or none)", name)
}
