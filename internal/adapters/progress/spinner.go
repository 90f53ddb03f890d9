package progress

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/fatih/color"
)

// SpinnerProgressReporter implements progress reporting with a spinner
type SpinnerProgressReporter struct {
	spinner *spinner.Spinner
	out     io.Writer
}

// NewSpinnerProgressReporter creates a new spinner-based progress reporter
func NewSpinnerProgressReporter() *SpinnerProgressReporter {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	s.HideCursor = false

	return &SpinnerProgressReporter{
		spinner: s,
		out:     os.Stdout,
	}
}

// OnProgress handles progress events
func (r *SpinnerProgressReporter) OnProgress(ctx context.Context, event usecase.ProgressEvent) {
	if event.Spinner {
		if !r.spinner.Active() {
			r.spinner.Start()
		}
		r.spinner.Suffix = " " + event.Message
	} else if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Info prints an info message
func (r *SpinnerProgressReporter) Info(message string) {
	r.printPaused(color.New(color.FgCyan), message)
}

// Error prints an error message
func (r *SpinnerProgressReporter) Error(message string) {
	r.printPaused(color.New(color.FgRed), message)
}

// printPaused stops the spinner while a line is printed
func (r *SpinnerProgressReporter) printPaused(c *color.Color, message string) {
	wasActive := r.spinner.Active()
	if wasActive {
		r.spinner.Stop()
	}

	c.Fprintln(r.out, message)

	if wasActive {
		r.spinner.Start()
	}
}

// Stop halts the spinner before results or errors are printed
func (r *SpinnerProgressReporter) Stop() {
	if r.spinner.Active() {
		r.spinner.Stop()
	}
}

// Ensure SpinnerProgressReporter implements ProgressSink
var _ usecase.ProgressSink = (*SpinnerProgressReporter)(nil)
