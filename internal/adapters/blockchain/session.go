package blockchain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/dappctl/dappctl/internal/domain"
	"github.com/dappctl/dappctl/internal/domain/bindings"
	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
)

var errNotAuthorized = errors.New("not authorized to sign this account")

// Session is an open connection to a network with its signers
type Session struct {
	network  *config.Network
	backend  Backend
	closer   func() error
	chainID  *big.Int
	signer   types.Signer
	keys     map[common.Address]*ecdsa.PrivateKey
	accounts []common.Address
	log      *slog.Logger
}

func newSession(
	network *config.Network,
	backend Backend,
	closer func() error,
	chainID *big.Int,
	keys []*ecdsa.PrivateKey,
	log *slog.Logger,
) *Session {
	s := &Session{
		network: network,
		backend: backend,
		closer:  closer,
		chainID: chainID,
		signer:  types.LatestSignerForChainID(chainID),
		keys:    make(map[common.Address]*ecdsa.PrivateKey, len(keys)),
		log:     log,
	}
	for _, key := range keys {
		address := crypto.PubkeyToAddress(key.PublicKey)
		if _, dup := s.keys[address]; dup {
			continue
		}
		s.keys[address] = key
		s.accounts = append(s.accounts, address)
	}
	return s
}

// Network returns the network the session is connected to
func (s *Session) Network() *config.Network { return s.network }

// ChainID returns the chain ID reported by the node
func (s *Session) ChainID() uint64 { return s.chainID.Uint64() }

// Accounts returns signer addresses in configuration order
func (s *Session) Accounts() []common.Address { return s.accounts }

// Balance returns an account's latest balance in wei
func (s *Session) Balance(ctx context.Context, account common.Address) (*big.Int, error) {
	return s.backend.BalanceAt(ctx, account, nil)
}

// Close releases the connection, stopping the in-process chain if any
func (s *Session) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

// transactOpts builds signing options for one of the configured accounts
func (s *Session) transactOpts(ctx context.Context, from common.Address) (*bind.TransactOpts, error) {
	key, ok := s.keys[from]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoSigner, from.Hex())
	}
	return &bind.TransactOpts{
		From: from,
		Signer: func(address common.Address, tx *types.Transaction) (*types.Transaction, error) {
			if address != from {
				return nil, errNotAuthorized
			}
			return types.SignTx(tx, s.signer, key)
		},
		Context: ctx,
	}, nil
}

// Deploy sends the creation transaction and waits until code is live.
func (s *Session) Deploy(ctx context.Context, from common.Address, artifact *models.Artifact, args ...interface{}) (*models.DeployReceipt, error) {
	if !artifact.HasBytecode() {
		return nil, fmt.Errorf("%w: %s", domain.ErrNoBytecode, artifact.FullyQualifiedName())
	}

	parsed, err := artifact.ParseABI()
	if err != nil {
		return nil, err
	}
	constructorInput, err := parsed.Pack("", args...)
	if err != nil {
		return nil, fmt.Errorf("failed to encode constructor arguments: %w", err)
	}

	opts, err := s.transactOpts(ctx, from)
	if err != nil {
		return nil, err
	}

	address, tx, err := bind.DeployContract(opts, artifact.Bytecode, s.backend, constructorInput)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrDeploymentFailed, err)
	}
	s.log.Debug("creation transaction sent", "contract", artifact.ContractName, "tx", tx.Hash())

	receipt, err := bind.WaitMined(ctx, s.backend, tx.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed waiting for %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: transaction %s reverted", domain.ErrDeploymentFailed, tx.Hash().Hex())
	}

	code, err := s.backend.CodeAt(ctx, address, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to check code: %w", err)
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("%w: no code at %s after transaction %s", domain.ErrDeploymentFailed, address.Hex(), tx.Hash().Hex())
	}

	return &models.DeployReceipt{
		Address:         address,
		TransactionHash: tx.Hash(),
		BlockNumber:     receipt.BlockNumber.Uint64(),
		GasUsed:         receipt.GasUsed,
		Deployer:        from,
	}, nil
}

// Healthcare binds the Healthcare call surface at address
func (s *Session) Healthcare(address common.Address) (usecase.HealthcareContract, error) {
	binding := bindings.NewHealthcare()
	return &HealthcareGateway{
		session:  s,
		binding:  binding,
		contract: binding.Instance(s.backend, address),
		address:  address,
	}, nil
}

// send signs and submits packed calldata, then waits for a successful receipt
func (s *Session) send(ctx context.Context, contract *bind.BoundContract, from common.Address, data []byte) (*models.TxResult, error) {
	opts, err := s.transactOpts(ctx, from)
	if err != nil {
		return nil, err
	}

	tx, err := bind.Transact(contract, opts, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransactionFailed, err)
	}

	receipt, err := bind.WaitMined(ctx, s.backend, tx.Hash())
	if err != nil {
		return nil, fmt.Errorf("failed waiting for %s: %w", tx.Hash().Hex(), err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("%w: transaction %s reverted", domain.ErrTransactionFailed, tx.Hash().Hex())
	}

	return &models.TxResult{
		Hash:        tx.Hash(),
		BlockNumber: receipt.BlockNumber.Uint64(),
		GasUsed:     receipt.GasUsed,
	}, nil
}

// Ensure the adapter implements the interface
var _ usecase.Chain = (*Session)(nil)
