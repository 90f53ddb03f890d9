package compiler

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCompiler(t *testing.T, files ...string) *Compiler {
	t.Helper()
	root := t.TempDir()
	for _, f := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, f), []byte(""), 0644))
	}
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCompiler(&config.RuntimeConfig{ProjectRoot: root, JSON: true}, nil, log)
}

func TestCommand(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		want  []string
	}{
		{"hardhat project", []string{"hardhat.config.js"}, []string{"npx", "hardhat", "compile"}},
		{"typescript hardhat project", []string{"hardhat.config.ts"}, []string{"npx", "hardhat", "compile"}},
		{"foundry project", []string{"foundry.toml"}, []string{"forge", "build"}},
		{"hardhat with foundry plugin", []string{"hardhat.config.cjs", "foundry.toml"}, []string{"npx", "hardhat", "compile"}},
		{"no markers", nil, []string{"npx", "hardhat", "compile"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCompiler(t, tt.files...)
			assert.Equal(t, tt.want, c.Command())
		})
	}
}

func TestIsPTYClosed(t *testing.T) {
	assert.False(t, isPTYClosed(io.EOF))
	assert.True(t, isPTYClosed(&os.PathError{Op: "read", Path: "/dev/ptmx", Err: syscall.EIO}))
}
