package export

import (
	"context"
	"errors"

	"github.com/alexiusacademia/gosolrad/internal/log"
	"github.com/alexiusacademia/gosolrad/internal/radiation"
)

// Result lists the files produced by an export run
type Result struct {
	DataFiles []string
	Scripts   []string
	Images    []string
}

// Exporter writes data files and plot scripts to Dir and hands them to Renderer
type Exporter struct {
	Dir      string
	Specs    []ScriptSpec
	Renderer ChartRenderer
}

// NewExporter returns an exporter for the default charts
func NewExporter(dir string, renderer ChartRenderer) *Exporter {
	return &Exporter{Dir: dir, Specs: DefaultScripts(), Renderer: renderer}
}

// Run writes everything and renders the charts. Data and script write
// failures abort the run. A renderer failure is returned as an
// *ExternalToolError alongside the files that were written.
func (e *Exporter) Run(ctx context.Context, calc *radiation.Calculator) (*Result, error) {
	res := &Result{}

	data, err := WriteDataFiles(e.Dir, calc)
	if err != nil {
		return nil, err
	}
	res.DataFiles = data
	log.Debugf("wrote %d data files to %s", len(data), e.Dir)

	scripts, err := WriteScripts(e.Dir, e.Specs)
	if err != nil {
		return res, err
	}
	res.Scripts = scripts
	log.Debugf("wrote %d plot scripts to %s", len(scripts), e.Dir)

	if e.Renderer == nil {
		return res, nil
	}

	images, err := e.Renderer.Render(ctx, Job{Dir: e.Dir, Calc: calc, Specs: e.Specs})
	res.Images = images
	for _, img := range images {
		log.Infof("rendered %s", img)
	}
	if err != nil {
		var tool *ExternalToolError
		if !errors.As(err, &tool) {
			err = &ExternalToolError{Tool: "renderer", Err: err}
		}
		return res, err
	}
	return res, nil
}
