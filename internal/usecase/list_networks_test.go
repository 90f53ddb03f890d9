package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubResolver serves networks from a map
type stubResolver struct {
	names    []string
	networks map[string]*config.Network
}

func (r *stubResolver) Names() []string { return r.names }

func (r *stubResolver) Resolve(name string) (*config.Network, error) {
	if n, ok := r.networks[name]; ok {
		return n, nil
	}
	return nil, errors.New("network " + name + " has no rpc_url")
}

func TestListNetworks(t *testing.T) {
	resolver := &stubResolver{
		names: []string{"hardhat", "localhost", "base"},
		networks: map[string]*config.Network{
			"hardhat":   hardhatNetwork,
			"localhost": localhostNetwork,
		},
	}
	cfg := &config.RuntimeConfig{Network: hardhatNetwork}

	t.Run("without probing", func(t *testing.T) {
		uc := usecase.NewListNetworks(cfg, resolver, &fakeConnector{chain: newFakeChain()})
		result, err := uc.Run(context.Background(), usecase.ListNetworksParams{})
		require.NoError(t, err)

		require.Len(t, result.Networks, 3)
		assert.Equal(t, "hardhat", result.Current)
		assert.Equal(t, uint64(31337), result.Networks[0].ChainID)
		assert.Equal(t, uint64(0), result.Networks[1].ChainID)
		assert.Error(t, result.Networks[2].Error)
	})

	t.Run("probing reads the chain ID", func(t *testing.T) {
		chain := newFakeChain()
		chain.chainID = 1337
		uc := usecase.NewListNetworks(cfg, resolver, &fakeConnector{chain: chain})
		result, err := uc.Run(context.Background(), usecase.ListNetworksParams{Probe: true})
		require.NoError(t, err)

		assert.Equal(t, uint64(1337), result.Networks[1].ChainID)
		assert.NoError(t, result.Networks[1].Error)
		assert.True(t, chain.closed)
	})

	t.Run("probe failure is reported per network", func(t *testing.T) {
		uc := usecase.NewListNetworks(cfg, resolver, &fakeConnector{err: errors.New("connection refused")})
		result, err := uc.Run(context.Background(), usecase.ListNetworksParams{Probe: true})
		require.NoError(t, err)

		assert.NoError(t, result.Networks[0].Error)
		assert.EqualError(t, result.Networks[1].Error, "connection refused")
	})
}
