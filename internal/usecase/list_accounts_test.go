package usecase_test

import (
	"context"
	"math/big"
	"testing"

	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListAccounts(t *testing.T) {
	cfg := &config.RuntimeConfig{Network: hardhatNetwork}
	uc := usecase.NewListAccounts(cfg, &fakeConnector{chain: newFakeChain()}, usecase.NopProgress{})

	result, err := uc.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, result.Accounts, 4)
	assert.Equal(t, uint64(31337), result.ChainID)
	assert.Equal(t, 0, result.Accounts[0].Index)
	assert.Equal(t, adminAddr, result.Accounts[0].Address)
	assert.Equal(t, 0, result.Accounts[3].Balance.Cmp(big.NewInt(1e18)))
}
