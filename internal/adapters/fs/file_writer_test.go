package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrontendWriterAdapter(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "src", "contracts")
	writer := NewFrontendWriterAdapter(&config.RuntimeConfig{FrontendDir: dir})

	files := []models.FrontendFile{
		{Name: "contract-address.json", Content: []byte(`{"Voting": "0x01"}`)},
		{Name: "Voting.json", Content: []byte(`{}`)},
	}
	written, err := writer.WriteFrontendFiles(context.Background(), files)
	require.NoError(t, err)
	assert.Equal(t, dir, written)

	// A second run overwrites
	files[0].Content = []byte(`{"Voting": "0x02"}`)
	_, err = writer.WriteFrontendFiles(context.Background(), files[:1])
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "contract-address.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"Voting": "0x02"}`, string(data))
	assert.FileExists(t, filepath.Join(dir, "Voting.json"))
}
