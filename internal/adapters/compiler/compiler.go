package compiler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/creack/pty"
	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/usecase"
)

// ArtifactIndex is reset after a build so fresh artifacts are picked up
type ArtifactIndex interface {
	Reset()
}

// Compiler runs the project's build tool with streaming output
type Compiler struct {
	log         *slog.Logger
	projectRoot string
	out         io.Writer
	index       ArtifactIndex
}

// NewCompiler creates a compiler for the configured project
func NewCompiler(cfg *config.RuntimeConfig, index ArtifactIndex, log *slog.Logger) *Compiler {
	out := io.Writer(os.Stderr)
	if cfg.JSON {
		out = io.Discard
	}
	return &Compiler{
		log:         log.With("component", "Compiler"),
		projectRoot: cfg.ProjectRoot,
		out:         out,
		index:       index,
	}
}

// Command returns the build command for the project layout. Hardhat wins
// when both a hardhat config and foundry.toml are present.
func (c *Compiler) Command() []string {
	for _, name := range []string{"hardhat.config.js", "hardhat.config.cjs", "hardhat.config.ts"} {
		if fileExists(filepath.Join(c.projectRoot, name)) {
			return []string{"npx", "hardhat", "compile"}
		}
	}
	if fileExists(filepath.Join(c.projectRoot, "foundry.toml")) {
		return []string{"forge", "build"}
	}
	return []string{"npx", "hardhat", "compile"}
}

// Compile builds the contracts. Output goes through a PTY so the build
// tool keeps its colours.
func (c *Compiler) Compile(ctx context.Context) error {
	args := c.Command()
	start := time.Now()
	c.log.Debug("running compiler", "cmd", strings.Join(args, " "), "dir", c.projectRoot)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	cmd.Dir = c.projectRoot

	ptyFile, err := pty.Start(cmd)
	if err != nil {
		return fmt.Errorf("failed to start %s: %w", args[0], err)
	}
	defer func() {
		_ = ptyFile.Close()
	}()

	var output bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(c.out, &output), ptyFile); err != nil && !isPTYClosed(err) {
		c.log.Debug("reading compiler output", "error", err)
	}

	if err := cmd.Wait(); err != nil {
		c.log.Error("compile failed", "error", err, "duration", time.Since(start))
		return fmt.Errorf("%s failed: %w\nOutput: %s", strings.Join(args, " "), err, strings.TrimSpace(output.String()))
	}

	c.log.Debug("compile completed", "duration", time.Since(start))
	if c.index != nil {
		c.index.Reset()
	}
	return nil
}

// isPTYClosed reports the EIO Linux returns once the child closes its side
func isPTYClosed(err error) bool {
	var pathErr *os.PathError
	return errors.As(err, &pathErr) && errors.Is(pathErr.Err, syscall.EIO)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

var _ usecase.Compiler = (*Compiler)(nil)
