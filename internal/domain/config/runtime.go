package config

import (
	"time"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	DataDir     string

	// Context settings
	Network *Network

	// Execution settings
	Debug          bool
	NonInteractive bool
	JSON           bool
	Timeout        time.Duration

	// Resolved paths
	ArtifactsDir string
	FrontendDir  string

	// Deploy defaults from the project file
	DefaultContract string

	// Optional S3 mirror of the frontend directory
	FrontendBucket string
	FrontendPrefix string

	Project *ProjectConfig
}

// NetworkKind distinguishes the in-process chain from RPC-backed ones.
type NetworkKind string

const (
	// NetworkKindInProcess is a simulated chain living for the duration of one command.
	NetworkKindInProcess NetworkKind = "in-process"
	// NetworkKindRPC is any network reached through a JSON-RPC endpoint.
	NetworkKindRPC NetworkKind = "rpc"
)

// Network represents a resolved network configuration
type Network struct {
	Name    string      `json:"name"`
	Kind    NetworkKind `json:"kind"`
	ChainID uint64      `json:"chainId"`
	RPCURL  string      `json:"rpcUrl,omitempty"`
	// Accounts holds hex private keys, in signer order.
	Accounts []string `json:"-"`
	// Local is true for development chains where no confirmation is needed.
	Local bool `json:"local"`
}

// IsEphemeral reports whether state is discarded when the command exits.
func (n *Network) IsEphemeral() bool {
	return n.Kind == NetworkKindInProcess
}
