package logging

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNewLoggerDropsTimeOutsideDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, false, "info")
	logger.Info("deployed", "address", "0xabc")

	out := buf.String()
	assert.NotContains(t, out, "time=")
	assert.Contains(t, out, "msg=deployed")
	assert.Contains(t, out, "address=0xabc")
}

func TestNewLoggerDebugEnablesDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, true, "error")
	logger.Debug("probe")

	assert.Contains(t, buf.String(), "msg=probe")
}
