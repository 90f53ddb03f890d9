package blockchain

import (
	"context"
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/eth/ethconfig"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/ethereum/go-ethereum/node"
	"github.com/ethereum/go-ethereum/params"
)

// devBalance is what each development account starts with: 10000 ETH
var devBalance = new(big.Int).Mul(big.NewInt(10000), big.NewInt(params.Ether))

// automineClient mines a block after every accepted transaction,
// so receipts are available as soon as SendTransaction returns.
type automineClient struct {
	simulated.Client
	sim *simulated.Backend
}

func (c *automineClient) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	if err := c.Client.SendTransaction(ctx, tx); err != nil {
		return err
	}
	c.sim.Commit()
	return nil
}

// newInProcessBackend starts a simulated chain with the given chain ID and
// funds every key's address.
func newInProcessBackend(chainID uint64, keys []*ecdsa.PrivateKey) (Backend, func() error, error) {
	alloc := types.GenesisAlloc{}
	for _, key := range keys {
		alloc[crypto.PubkeyToAddress(key.PublicKey)] = types.Account{Balance: devBalance}
	}

	chainConfig := *params.AllDevChainProtocolChanges
	chainConfig.ChainID = new(big.Int).SetUint64(chainID)

	sim := simulated.NewBackend(alloc, func(_ *node.Config, ethConf *ethconfig.Config) {
		ethConf.Genesis.Config = &chainConfig
	})

	return &automineClient{Client: sim.Client(), sim: sim}, sim.Close, nil
}
