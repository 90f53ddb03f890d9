package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/joho/godotenv"
)

// ProjectFile is the optional project configuration file
const ProjectFile = "dappctl.toml"

// projectMarkers are files that identify a project root, in priority order
var projectMarkers = []string{
	ProjectFile,
	"hardhat.config.js",
	"hardhat.config.cjs",
	"hardhat.config.ts",
	"foundry.toml",
}

// FindProjectRoot walks up from current directory to find a project marker
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findProjectRootFrom(dir)
}

func findProjectRootFrom(dir string) (string, error) {
	for {
		for _, marker := range projectMarkers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a contracts project (none of %v found)", projectMarkers)
		}
		dir = parent
	}
}

// LoadEnvFiles loads .env files so ${VAR} references can be expanded.
// Variables already present in the environment win.
func LoadEnvFiles(projectRoot string) error {
	envFiles := []string{
		filepath.Join(projectRoot, ".env.local"),
		filepath.Join(projectRoot, ".env"),
	}

	for _, envFile := range envFiles {
		if _, err := os.Stat(envFile); err != nil {
			continue
		}
		if err := godotenv.Load(envFile); err != nil {
			return fmt.Errorf("failed to load %s: %w", filepath.Base(envFile), err)
		}
	}
	return nil
}

// LoadProjectConfig reads dappctl.toml on top of the defaults.
// A missing file is not an error.
func LoadProjectConfig(projectRoot string) (*config.ProjectConfig, error) {
	cfg := config.DefaultProjectConfig()

	path := filepath.Join(projectRoot, ProjectFile)
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to parse %s: %w", ProjectFile, err)
	}

	expandProjectConfig(cfg)
	return cfg, nil
}

// expandProjectConfig resolves ${VAR} references in string values
func expandProjectConfig(cfg *config.ProjectConfig) {
	cfg.Paths.Artifacts = os.ExpandEnv(cfg.Paths.Artifacts)
	cfg.Paths.Frontend = os.ExpandEnv(cfg.Paths.Frontend)
	cfg.Frontend.S3Bucket = os.ExpandEnv(cfg.Frontend.S3Bucket)
	cfg.Frontend.S3Prefix = os.ExpandEnv(cfg.Frontend.S3Prefix)

	for name, network := range cfg.Networks {
		network.RPCURL = os.ExpandEnv(network.RPCURL)
		accounts := make([]string, 0, len(network.Accounts))
		for _, account := range network.Accounts {
			if expanded := os.ExpandEnv(account); expanded != "" {
				accounts = append(accounts, expanded)
			}
		}
		network.Accounts = accounts
		cfg.Networks[name] = network
	}
}

// resolvePath makes a project-relative path absolute
func resolvePath(projectRoot, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(projectRoot, path)
}
