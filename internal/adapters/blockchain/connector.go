package blockchain

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/dappctl/dappctl/internal/domain"
	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Backend is what a session needs from a node: contract calls and
// transactions, receipts, balances and the chain ID.
type Backend interface {
	bind.ContractBackend
	bind.DeployBackend
	BalanceAt(ctx context.Context, account common.Address, blockNumber *big.Int) (*big.Int, error)
	ChainID(ctx context.Context) (*big.Int, error)
}

// Connector opens sessions on in-process and RPC networks
type Connector struct {
	log *slog.Logger
}

// NewConnector creates a new chain connector
func NewConnector(log *slog.Logger) *Connector {
	return &Connector{log: log.With("component", "blockchain")}
}

// Connect opens a session on the network with its configured signers
func (c *Connector) Connect(ctx context.Context, network *config.Network) (usecase.Chain, error) {
	keys, err := parseKeys(network.Accounts)
	if err != nil {
		return nil, fmt.Errorf("invalid account for network %s: %w", network.Name, err)
	}

	if network.IsEphemeral() {
		backend, closer, err := newInProcessBackend(network.ChainID, keys)
		if err != nil {
			return nil, fmt.Errorf("failed to start in-process chain: %w", err)
		}
		c.log.Debug("started in-process chain", "chainId", network.ChainID, "accounts", len(keys))
		return newSession(network, backend, closer, new(big.Int).SetUint64(network.ChainID), keys, c.log), nil
	}

	client, err := ethclient.DialContext(ctx, network.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RPC: %w", err)
	}

	// Verify chain ID matches
	networkChainID, err := client.ChainID(ctx)
	if err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to get chain ID from %s: %w", network.Name, err)
	}
	if network.ChainID != 0 && networkChainID.Uint64() != network.ChainID {
		client.Close()
		return nil, fmt.Errorf("%w: %s expected chain ID %d, got %d",
			domain.ErrNetworkMismatch, network.Name, network.ChainID, networkChainID.Uint64())
	}

	c.log.Debug("connected", "network", network.Name, "chainId", networkChainID)
	closer := func() error {
		client.Close()
		return nil
	}
	return newSession(network, client, closer, networkChainID, keys, c.log), nil
}

// parseKeys decodes hex private keys, with or without 0x prefix
func parseKeys(hexKeys []string) ([]*ecdsa.PrivateKey, error) {
	keys := make([]*ecdsa.PrivateKey, 0, len(hexKeys))
	for i, hexKey := range hexKeys {
		key, err := crypto.HexToECDSA(strings.TrimPrefix(strings.TrimSpace(hexKey), "0x"))
		if err != nil {
			// Never echo the key itself
			return nil, fmt.Errorf("account #%d is not a valid private key", i)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// Ensure the adapter implements the interface
var _ usecase.ChainConnector = (*Connector)(nil)
