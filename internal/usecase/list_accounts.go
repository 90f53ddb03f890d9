package usecase

import (
	"context"
	"fmt"

	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/domain/models"
)

// ListAccountsResult contains the signers of the selected network
type ListAccountsResult struct {
	Network  *config.Network
	ChainID  uint64
	Accounts []*models.Account
}

// ListAccounts lists the configured signers with their balances
type ListAccounts struct {
	config    *config.RuntimeConfig
	connector ChainConnector
	sink      ProgressSink
}

// NewListAccounts creates a new ListAccounts use case
func NewListAccounts(cfg *config.RuntimeConfig, connector ChainConnector, sink ProgressSink) *ListAccounts {
	return &ListAccounts{
		config:    cfg,
		connector: connector,
		sink:      sink,
	}
}

// Run executes the use case
func (uc *ListAccounts) Run(ctx context.Context) (*ListAccountsResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "connecting",
		Message: fmt.Sprintf("Connecting to %s", uc.config.Network.Name),
		Spinner: true,
	})
	defer uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})

	chain, err := uc.connector.Connect(ctx, uc.config.Network)
	if err != nil {
		return nil, err
	}
	defer chain.Close()

	result := &ListAccountsResult{
		Network: uc.config.Network,
		ChainID: chain.ChainID(),
	}
	for i, address := range chain.Accounts() {
		balance, err := chain.Balance(ctx, address)
		if err != nil {
			return nil, fmt.Errorf("failed to get balance of %s: %w", address.Hex(), err)
		}
		result.Accounts = append(result.Accounts, &models.Account{
			Index:   i,
			Address: address,
			Balance: balance,
		})
	}
	return result, nil
}
