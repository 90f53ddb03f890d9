package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider(t *testing.T) {
	t.Run("defaults without project file", func(t *testing.T) {
		root := t.TempDir()
		v := viper.New()
		v.Set("project_root", root)

		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, root, cfg.ProjectRoot)
		assert.Equal(t, filepath.Join(root, ".dappctl"), cfg.DataDir)
		assert.Equal(t, filepath.Join(root, "artifacts"), cfg.ArtifactsDir)
		assert.Equal(t, filepath.Join(root, "src", "contracts"), cfg.FrontendDir)
		assert.Equal(t, "voting", cfg.DefaultContract)
		require.NotNil(t, cfg.Network)
		assert.Equal(t, HardhatNetwork, cfg.Network.Name)
		assert.True(t, cfg.Network.IsEphemeral())
	})

	t.Run("project file and flag overrides", func(t *testing.T) {
		root := t.TempDir()
		writeFile(t, root, ProjectFile, `
[paths]
artifacts = "out"

[deploy]
contract = "healthcare"

[networks.sepolia]
rpc_url = "https://sepolia.example"
chain_id = 11155111
`)
		v := viper.New()
		v.Set("project_root", root)
		v.Set("network", "sepolia")
		v.Set("frontend_dir", "/tmp/frontend")
		v.Set("timeout", "30s")

		cfg, err := Provider(v)
		require.NoError(t, err)

		assert.Equal(t, filepath.Join(root, "out"), cfg.ArtifactsDir)
		assert.Equal(t, "/tmp/frontend", cfg.FrontendDir)
		assert.Equal(t, "healthcare", cfg.DefaultContract)
		assert.Equal(t, 30*time.Second, cfg.Timeout)
		assert.Equal(t, config.NetworkKindRPC, cfg.Network.Kind)
		assert.Equal(t, uint64(11155111), cfg.Network.ChainID)
	})

	t.Run("unknown network", func(t *testing.T) {
		v := viper.New()
		v.Set("project_root", t.TempDir())
		v.Set("network", "mainnet")

		_, err := Provider(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mainnet")
	})
}

func TestSetupViperBindsFlags(t *testing.T) {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().String("network", "", "")
	cmd.Flags().Bool("non-interactive", false, "")
	require.NoError(t, cmd.Flags().Set("network", "localhost"))
	require.NoError(t, cmd.Flags().Set("non-interactive", "true"))

	v := SetupViper("/project", cmd)

	assert.Equal(t, "localhost", v.GetString("network"))
	assert.True(t, v.GetBool("non_interactive"))
	assert.Equal(t, "/project", v.GetString("project_root"))
	assert.Equal(t, 5*time.Minute, v.GetDuration("timeout"))
}

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
