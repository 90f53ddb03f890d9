package blockchain

import (
	"context"
	"io"
	"log/slog"
	"testing"

	appconfig "github.com/dappctl/dappctl/internal/config"
	"github.com/dappctl/dappctl/internal/domain"
	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// returns42 deploys a contract whose runtime code returns uint256(42) for any call
const returns42 = "0x600a600c600039600a6000f3602a60005260206000f3"

func newTestSession(t *testing.T) *Session {
	t.Helper()
	network := &config.Network{
		Name:     appconfig.HardhatNetwork,
		Kind:     config.NetworkKindInProcess,
		ChainID:  appconfig.HardhatChainID,
		Accounts: appconfig.DevAccountKeys[:4],
		Local:    true,
	}
	chain, err := NewConnector(slog.New(slog.NewTextHandler(io.Discard, nil))).Connect(context.Background(), network)
	require.NoError(t, err)
	t.Cleanup(func() { chain.Close() })
	return chain.(*Session)
}

func artifactWithCode(code string) *models.Artifact {
	return &models.Artifact{
		ContractName: "Answer",
		ABI:          []byte(`[]`),
		Bytecode:     hexutil.MustDecode(code),
	}
}

func TestInProcessSession(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)

	assert.Equal(t, uint64(31337), session.ChainID())
	require.Len(t, session.Accounts(), 4)
	assert.Equal(t, common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266"), session.Accounts()[0])

	balance, err := session.Balance(ctx, session.Accounts()[0])
	require.NoError(t, err)
	assert.Equal(t, 0, balance.Cmp(devBalance))
}

func TestSessionDeploy(t *testing.T) {
	ctx := context.Background()
	session := newTestSession(t)
	deployer := session.Accounts()[0]

	t.Run("deploys and verifies code", func(t *testing.T) {
		receipt, err := session.Deploy(ctx, deployer, artifactWithCode(returns42))
		require.NoError(t, err)
		assert.Equal(t, deployer, receipt.Deployer)
		assert.NotEqual(t, common.Address{}, receipt.Address)
		assert.Greater(t, receipt.GasUsed, uint64(0))

		code, err := session.backend.CodeAt(ctx, receipt.Address, nil)
		require.NoError(t, err)
		assert.NotEmpty(t, code)
	})

	t.Run("calls through the binding", func(t *testing.T) {
		receipt, err := session.Deploy(ctx, deployer, artifactWithCode(returns42))
		require.NoError(t, err)

		contract, err := session.Healthcare(receipt.Address)
		require.NoError(t, err)
		count, err := contract.DoctorCount(ctx)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), count)
	})

	t.Run("reverting constructor", func(t *testing.T) {
		_, err := session.Deploy(ctx, deployer, artifactWithCode("0x60006000fd"))
		require.ErrorIs(t, err, domain.ErrDeploymentFailed)
	})

	t.Run("empty runtime code", func(t *testing.T) {
		_, err := session.Deploy(ctx, deployer, artifactWithCode("0x00"))
		require.ErrorIs(t, err, domain.ErrDeploymentFailed)
		assert.Contains(t, err.Error(), "no code")
	})

	t.Run("unknown sender", func(t *testing.T) {
		_, err := session.Deploy(ctx, common.HexToAddress("0xdead"), artifactWithCode(returns42))
		require.ErrorIs(t, err, domain.ErrNoSigner)
	})

	t.Run("no bytecode", func(t *testing.T) {
		_, err := session.Deploy(ctx, deployer, &models.Artifact{ContractName: "IVoting"})
		require.ErrorIs(t, err, domain.ErrNoBytecode)
	})
}

func TestParseKeys(t *testing.T) {
	keys, err := parseKeys([]string{"0x" + appconfig.DevAccountKeys[0], appconfig.DevAccountKeys[1]})
	require.NoError(t, err)
	assert.Len(t, keys, 2)

	_, err = parseKeys([]string{"0xnot-a-key-but-a-secret"})
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "secret")
}
