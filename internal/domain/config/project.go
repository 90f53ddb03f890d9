package config

// ProjectConfig represents dappctl.toml
type ProjectConfig struct {
	Paths    PathsConfig              `toml:"paths"`
	Deploy   DeployConfig             `toml:"deploy"`
	Frontend FrontendConfig           `toml:"frontend"`
	Networks map[string]NetworkConfig `toml:"networks"`
}

// PathsConfig holds project-relative directories
type PathsConfig struct {
	Artifacts string `toml:"artifacts,omitempty"`
	Frontend  string `toml:"frontend,omitempty"`
}

// DeployConfig holds defaults for the deploy command
type DeployConfig struct {
	Contract string `toml:"contract,omitempty"`
}

// FrontendConfig configures where frontend files are mirrored
type FrontendConfig struct {
	S3Bucket string `toml:"s3_bucket,omitempty"`
	S3Prefix string `toml:"s3_prefix,omitempty"`
}

// NetworkConfig is a [networks.<name>] table
type NetworkConfig struct {
	RPCURL   string   `toml:"rpc_url"`
	ChainID  uint64   `toml:"chain_id,omitempty"`
	Accounts []string `toml:"accounts,omitempty"` //nolint:gosec // holds env var references
	Local    bool     `toml:"local,omitempty"`
}

// DefaultProjectConfig returns the configuration used when fields are left out.
func DefaultProjectConfig() *ProjectConfig {
	return &ProjectConfig{
		Paths: PathsConfig{
			Artifacts: "artifacts",
			Frontend:  "src/contracts",
		},
		Deploy: DeployConfig{
			Contract: "voting",
		},
		Networks: map[string]NetworkConfig{},
	}
}
