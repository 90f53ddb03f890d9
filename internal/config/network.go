package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dappctl/dappctl/internal/domain"
	"github.com/dappctl/dappctl/internal/domain/config"
)

// NetworkResolver resolves network names to configurations
type NetworkResolver struct {
	networks map[string]config.NetworkConfig
}

// NewNetworkResolver creates a new network resolver over the project's [networks] tables
func NewNetworkResolver(project *config.ProjectConfig) *NetworkResolver {
	networks := map[string]config.NetworkConfig{}
	if project != nil {
		for name, network := range project.Networks {
			networks[name] = network
		}
	}
	return &NetworkResolver{networks: networks}
}

// Names returns built-in and configured network names, built-ins first.
func (r *NetworkResolver) Names() []string {
	names := []string{HardhatNetwork, LocalhostNetwork}

	var configured []string
	for name := range r.networks {
		if name == HardhatNetwork || name == LocalhostNetwork {
			continue
		}
		configured = append(configured, name)
	}
	sort.Strings(configured)

	return append(names, configured...)
}

// Resolve resolves a network name to its configuration
func (r *NetworkResolver) Resolve(networkName string) (*config.Network, error) {
	if networkName == "" {
		networkName = HardhatNetwork
	}

	if networkName == HardhatNetwork {
		if _, overridden := r.networks[HardhatNetwork]; !overridden {
			return &config.Network{
				Name:     HardhatNetwork,
				Kind:     config.NetworkKindInProcess,
				ChainID:  HardhatChainID,
				Accounts: DevAccountKeys,
				Local:    true,
			}, nil
		}
	}

	nc, ok := r.networks[networkName]
	if !ok {
		if networkName != LocalhostNetwork {
			return nil, fmt.Errorf("%w: %q (available: %s)",
				domain.ErrNetworkNotFound, networkName, strings.Join(r.Names(), ", "))
		}
		nc = config.NetworkConfig{
			RPCURL: DefaultLocalhostRPC,
			Local:  true,
		}
	}

	if nc.RPCURL == "" {
		return nil, fmt.Errorf("network %q has no rpc_url (is %s set?)",
			networkName, GenerateEnvVarName(networkName))
	}

	network := &config.Network{
		Name:     networkName,
		Kind:     config.NetworkKindRPC,
		ChainID:  nc.ChainID,
		RPCURL:   nc.RPCURL,
		Accounts: nc.Accounts,
		Local:    nc.Local || networkName == LocalhostNetwork,
	}

	// Development nodes ship with the well-known accounts unlocked.
	if network.Local && len(network.Accounts) == 0 {
		network.Accounts = DevAccountKeys
	}

	return network, nil
}

// GenerateEnvVarName generates a conventional env var name for a network's RPC URL.
// Examples: sepolia -> SEPOLIA_RPC_URL, celo-sepolia -> CELO_SEPOLIA_RPC_URL
func GenerateEnvVarName(networkName string) string {
	name := strings.ToUpper(networkName)
	name = strings.NewReplacer("-", "_", ".", "_").Replace(name)
	return name + "_RPC_URL"
}
