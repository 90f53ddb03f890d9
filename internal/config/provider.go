package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// DataDirName is where dappctl keeps per-project state
const DataDirName = ".dappctl"

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = FindProjectRoot()
		if err != nil {
			return nil, fmt.Errorf("failed to find project root: %w", err)
		}
	}

	if err := LoadEnvFiles(projectRoot); err != nil {
		return nil, err
	}

	project, err := LoadProjectConfig(projectRoot)
	if err != nil {
		return nil, err
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:     projectRoot,
		DataDir:         filepath.Join(projectRoot, DataDirName),
		Debug:           v.GetBool("debug"),
		NonInteractive:  v.GetBool("non_interactive"),
		JSON:            v.GetBool("json"),
		Timeout:         v.GetDuration("timeout"),
		ArtifactsDir:    resolvePath(projectRoot, project.Paths.Artifacts),
		FrontendDir:     resolvePath(projectRoot, project.Paths.Frontend),
		DefaultContract: project.Deploy.Contract,
		FrontendBucket:  project.Frontend.S3Bucket,
		FrontendPrefix:  project.Frontend.S3Prefix,
		Project:         project,
	}

	// Flags and env vars override the project file
	if dir := v.GetString("artifacts"); dir != "" {
		cfg.ArtifactsDir = resolvePath(projectRoot, dir)
	}
	if dir := v.GetString("frontend_dir"); dir != "" {
		cfg.FrontendDir = resolvePath(projectRoot, dir)
	}

	network, err := NewNetworkResolver(project).Resolve(v.GetString("network"))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve network: %w", err)
	}
	cfg.Network = network

	return cfg, nil
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up environment variables
	v.SetEnvPrefix("DAPPCTL")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("network", HardhatNetwork)
	v.SetDefault("timeout", "5m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})

	return v
}

// ProvideNetworkResolver creates a NetworkResolver for Wire dependency injection
func ProvideNetworkResolver(cfg *config.RuntimeConfig) *NetworkResolver {
	return NewNetworkResolver(cfg.Project)
}
