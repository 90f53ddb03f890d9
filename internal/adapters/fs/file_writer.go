package fs

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/dappctl/dappctl/internal/usecase"
)

// FrontendWriterAdapter writes frontend files into the project
type FrontendWriterAdapter struct {
	dir string
}

// NewFrontendWriterAdapter creates a new frontend writer adapter
func NewFrontendWriterAdapter(cfg *config.RuntimeConfig) *FrontendWriterAdapter {
	return &FrontendWriterAdapter{dir: cfg.FrontendDir}
}

// WriteFrontendFiles creates the frontend directory if needed and overwrites each file
func (f *FrontendWriterAdapter) WriteFrontendFiles(ctx context.Context, files []models.FrontendFile) (string, error) {
	if err := os.MkdirAll(f.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create %s: %w", f.dir, err)
	}

	for _, file := range files {
		path := filepath.Join(f.dir, file.Name)
		if err := os.WriteFile(path, file.Content, 0644); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	return f.dir, nil
}

// Ensure the adapter implements the interface
var _ usecase.FrontendWriter = (*FrontendWriterAdapter)(nil)
