package usecase

import (
	"context"

	"github.com/dappctl/dappctl/internal/domain/config"
)

// ListNetworksParams contains parameters for listing networks
type ListNetworksParams struct {
	// Probe connects to RPC networks to read their chain ID
	Probe bool
}

// ListNetworksResult contains the result of listing networks
type ListNetworksResult struct {
	Networks []NetworkStatus
	Current  string
}

// NetworkStatus represents the status of a network
type NetworkStatus struct {
	Name    string
	ChainID uint64
	RPCURL  string
	Local   bool
	Error   error
}

// ListNetworks is a use case for listing available networks
type ListNetworks struct {
	resolver  NetworkResolver
	connector ChainConnector
	config    *config.RuntimeConfig
}

// NewListNetworks creates a new ListNetworks use case
func NewListNetworks(cfg *config.RuntimeConfig, resolver NetworkResolver, connector ChainConnector) *ListNetworks {
	return &ListNetworks{
		resolver:  resolver,
		connector: connector,
		config:    cfg,
	}
}

// Run executes the use case
func (uc *ListNetworks) Run(ctx context.Context, params ListNetworksParams) (*ListNetworksResult, error) {
	names := uc.resolver.Names()

	networks := make([]NetworkStatus, 0, len(names))
	for _, name := range names {
		status := NetworkStatus{Name: name}

		network, err := uc.resolver.Resolve(name)
		if err != nil {
			status.Error = err
			networks = append(networks, status)
			continue
		}
		status.ChainID = network.ChainID
		status.RPCURL = network.RPCURL
		status.Local = network.Local

		if params.Probe && !network.IsEphemeral() {
			chain, err := uc.connector.Connect(ctx, network)
			if err != nil {
				status.Error = err
			} else {
				status.ChainID = chain.ChainID()
				chain.Close()
			}
		}

		networks = append(networks, status)
	}

	return &ListNetworksResult{
		Networks: networks,
		Current:  uc.config.Network.Name,
	}, nil
}
