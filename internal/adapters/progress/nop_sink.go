package progress

import (
	"context"
	"fmt"
	"io"

	"github.com/dappctl/dappctl/internal/usecase"
)

// PlainSink prints info lines without spinners or colour, for
// non-interactive runs where output is piped or parsed.
type PlainSink struct {
	out io.Writer
}

// NewPlainSink creates a sink writing to out
func NewPlainSink(out io.Writer) *PlainSink {
	return &PlainSink{out: out}
}

// OnProgress ignores transient progress events
func (p *PlainSink) OnProgress(ctx context.Context, event usecase.ProgressEvent) {}

// Info prints the message as is
func (p *PlainSink) Info(message string) {
	fmt.Fprintln(p.out, message)
}

// Error prints the message as is
func (p *PlainSink) Error(message string) {
	fmt.Fprintln(p.out, message)
}

// Ensure PlainSink implements ProgressSink
var _ usecase.ProgressSink = (*PlainSink)(nil)
