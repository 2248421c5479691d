package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/alexiusacademia/gosolrad/internal/diagram"
	"github.com/alexiusacademia/gosolrad/internal/export"
	"github.com/alexiusacademia/gosolrad/internal/log"
	"github.com/alexiusacademia/gosolrad/internal/radiation"
)

const rule = "───────────────────────────────────────────────────────────────────────────"

func printHeader(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════════════════")
	fmt.Fprintf(w, "     %s\n", title)
	fmt.Fprintln(w, "═══════════════════════════════════════════════════════════════════════════")
	fmt.Fprintln(w)
}

func printSection(w io.Writer, title string) {
	fmt.Fprintf(w, "%s:\n", title)
	fmt.Fprintln(w, rule)
}

func printReport(w io.Writer, calc *radiation.Calculator) {
	if calc.Name() != "" {
		fmt.Fprintf(w, "  Dataset: %s\n", calc.Name())
	}
	if calc.Location() != "" {
		fmt.Fprintf(w, "  Location: %s\n", calc.Location())
	}
	fmt.Fprintln(w)

	printSection(w, "MONTHLY DATA")
	fmt.Fprint(w, diagram.RenderTable(calc))
	fmt.Fprintln(w)

	printSection(w, "LEGEND")
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "  G0\tExtraterrestrial radiation\n")
	for _, id := range []radiation.SeriesID{radiation.SeriesH, radiation.SeriesN, radiation.SeriesW, radiation.SeriesR, radiation.SeriesG, radiation.SeriesD, radiation.SeriesB} {
		fmt.Fprintf(tw, "  %s\t%s\n", id, id.Title())
	}
	tw.Flush()
	fmt.Fprintln(w)

	var summaries []*radiation.Summary
	for _, id := range []radiation.SeriesID{radiation.SeriesG, radiation.SeriesD, radiation.SeriesB} {
		s, err := calc.Summary(id)
		if err != nil {
			log.Warnf("summary of %s: %v", id, err)
			continue
		}
		summaries = append(summaries, s)
	}
	lines := diagram.SummaryLines(summaries)
	if kd, err := calc.AnnualMeanDiffuseFraction(); err == nil {
		lines = append(lines, fmt.Sprintf("Mean diffuse fraction D/G = %.3f", kd))
	} else {
		log.Warnf("diffuse fraction: %v", err)
	}
	fmt.Fprint(w, diagram.DrawSummaryBox("ANNUAL SUMMARY", lines))
	fmt.Fprintln(w)
}

func printBarChart(w io.Writer, calc *radiation.Calculator, width int) error {
	chart, err := diagram.DrawRadiationChart(calc, width)
	if err != nil {
		return err
	}
	printSection(w, "GLOBAL RADIATION G")
	fmt.Fprint(w, chart)
	fmt.Fprintln(w)
	return nil
}

// runExport writes data files and scripts and renders the charts. Render
// failures are only reported as warnings; write failures are returned.
func runExport(ctx context.Context, w io.Writer, calc *radiation.Calculator) error {
	renderer, err := export.NewRenderer(cfg.Renderer, cfg.GnuplotPath)
	if err != nil {
		return err
	}

	printSection(w, "EXPORT")
	res, err := export.NewExporter(cfg.OutputDir, renderer).Run(ctx, calc)
	if res != nil {
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "  Data files:\t%d written to %s\n", len(res.DataFiles), cfg.OutputDir)
		for _, s := range res.Scripts {
			fmt.Fprintf(tw, "  Plot script:\t%s\n", s)
		}
		for _, img := range res.Images {
			fmt.Fprintf(tw, "  Chart:\t%s ✓\n", img)
		}
		tw.Flush()
	}

	if err != nil {
		var tool *export.ExternalToolError
		if errors.As(err, &tool) {
			log.Warnw("chart rendering failed", "renderer", cfg.Renderer, "error", err)
			fmt.Fprintf(w, "  ⚠ Chart rendering failed: %v\n\n", err)
			return nil
		}
		log.Errorw("export failed", "output_dir", cfg.OutputDir, "error", err)
		fmt.Fprintf(w, "  ⚠ Export failed: %v\n\n", err)
		return err
	}
	log.Infow("export complete",
		"output_dir", cfg.OutputDir,
		"data_files", len(res.DataFiles),
		"scripts", len(res.Scripts),
		"images", len(res.Images),
	)
	fmt.Fprintln(w)
	return nil
}

func printBox(w io.Writer, lines []string) {
	fmt.Fprint(w, diagram.DrawSummaryBox("gosolrad", lines))
}
