package cli

import (
	"fmt"
	"time"
)

// ExportReport summarizes a static export once it has finished.
type ExportReport struct {
	output    *Output
	startTime time.Time
	outputDir string
	pages     []string
	files     []string
	err       error
}

func NewExportReport(output *Output, outputDir string) *ExportReport {
	return &ExportReport{
		output:    output,
		startTime: time.Now(),
		outputDir: outputDir,
	}
}

func (r *ExportReport) Finish(pages, files []string, err error) {
	r.pages = pages
	r.files = files
	r.err = err
}

func (r *ExportReport) HasFailures() bool {
	return r.err != nil
}

func (r *ExportReport) Render(verbose bool) {
	duration := time.Since(r.startTime)

	r.output.PrintSuccess("%d pages rendered", len(r.pages))

	if verbose {
		for _, f := range r.files {
			r.output.PrintFile(f)
		}
	}

	if r.err != nil {
		r.output.PrintError("Export failed after %s", formatDuration(duration))
		r.output.PrintError("%v", r.err)
		return
	}

	r.output.PrintSuccess("Export complete in %s", formatDuration(duration))
	if r.outputDir != "" {
		r.output.PrintDone(fmt.Sprintf("\n  %s", r.output.Gray("Output: "+r.outputDir)))
	}
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}
