package render

import (
	"fmt"
	"io"
	"time"

	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
)

// ConformanceRenderer renders a conformance report
type ConformanceRenderer struct {
	out    io.Writer
	format Format
}

// NewConformanceRenderer creates a new conformance renderer
func NewConformanceRenderer(out io.Writer, format Format) *ConformanceRenderer {
	return &ConformanceRenderer{out: out, format: format}
}

// Render prints one line per scenario and a pass/fail summary
func (r *ConformanceRenderer) Render(report *models.ConformanceReport) error {
	if ok, err := WriteStructured(r.out, r.format, report); ok {
		return err
	}

	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "%s conformance on %s (chain %d)\n\n", report.Contract, report.Network, report.ChainID)

	for _, res := range report.Results {
		mark := color.New(color.FgGreen).Sprint("✓")
		if !res.Passed {
			mark = color.New(color.FgRed).Sprint("✗")
		}
		fmt.Fprintf(r.out, "  %s %s %s\n", mark, res.Description,
			color.New(color.Faint).Sprintf("(%s)", res.Duration.Round(time.Millisecond)))
		fmt.Fprintf(r.out, "      %s\n", color.New(color.Faint).Sprintf("instance %s", instanceLabel(res.Instance)))
		if !res.Passed {
			fmt.Fprintf(r.out, "      %s\n", color.New(color.FgRed).Sprint(res.Failure))
		}
	}

	fmt.Fprintln(r.out)
	passed := len(report.Results) - report.Failed()
	if report.Failed() == 0 {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%d passing", passed)))
	} else {
		fmt.Fprintf(r.out, "%s, %s\n",
			color.New(color.FgGreen).Sprintf("%d passing", passed),
			color.New(color.FgRed).Sprintf("%d failing", report.Failed()))
	}
	return nil
}

// instanceLabel prints "-" for scenarios that failed before deploying
func instanceLabel(instance common.Address) string {
	if instance == (common.Address{}) {
		return "-"
	}
	return instance.Hex()
}
