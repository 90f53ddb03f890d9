package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/dappctl/dappctl/internal/domain"
	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// ContractAddressFile maps aliases to deployed addresses for the frontend
	ContractAddressFile = "contract-address.json"
)

// DeployContractParams contains parameters for deploying a contract
type DeployContractParams struct {
	// Contract is a contract name or "path/File.sol:Name"; empty means the project default
	Contract string
	// Alias overrides the name the frontend files use
	Alias string
	// From selects the deployer among the network's accounts
	From string
	// Compile runs the project's compiler before loading artifacts
	Compile bool
}

// DeployContractResult contains the outcome of a deployment
type DeployContractResult struct {
	Deployment  *models.Deployment
	Network     *config.Network
	FrontendDir string
	// PublishedTo is the remote location of the frontend files, if mirrored
	PublishedTo string
	// Recorded is false for networks whose state is discarded on exit
	Recorded bool
}

// DeployContract deploys a compiled contract and publishes it to the frontend
type DeployContract struct {
	config    *config.RuntimeConfig
	compiler  Compiler
	resolve   *ResolveContract
	connector ChainConnector
	frontend  FrontendWriter
	publisher FrontendPublisher
	registry  DeploymentRepository
	confirmer Confirmer
	sink      ProgressSink
	log       *slog.Logger
}

// NewDeployContract creates a new DeployContract use case
func NewDeployContract(
	cfg *config.RuntimeConfig,
	compiler Compiler,
	resolve *ResolveContract,
	connector ChainConnector,
	frontend FrontendWriter,
	publisher FrontendPublisher,
	registry DeploymentRepository,
	confirmer Confirmer,
	sink ProgressSink,
	log *slog.Logger,
) *DeployContract {
	return &DeployContract{
		config:    cfg,
		compiler:  compiler,
		resolve:   resolve,
		connector: connector,
		frontend:  frontend,
		publisher: publisher,
		registry:  registry,
		confirmer: confirmer,
		sink:      sink,
		log:       log,
	}
}

// Run executes the deployment
func (uc *DeployContract) Run(ctx context.Context, params DeployContractParams) (*DeployContractResult, error) {
	network := uc.config.Network
	if network.IsEphemeral() {
		uc.log.Warn("You are trying to deploy a contract to the Hardhat Network, which " +
			"gets automatically created and destroyed every time. Use the Hardhat " +
			"option '--network localhost'")
	}

	if params.Compile {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "compiling", Message: "Compiling contracts", Spinner: true})
		if err := uc.compiler.Compile(ctx); err != nil {
			return nil, fmt.Errorf("failed to compile contracts: %w", err)
		}
	}

	contractRef := lo.Ternary(params.Contract != "", params.Contract, uc.config.DefaultContract)
	artifact, err := uc.resolve.Run(ctx, contractRef)
	if err != nil {
		return nil, err
	}
	alias := lo.Ternary(params.Alias != "", params.Alias, DeriveAlias(artifact.ContractName))

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "connecting", Message: fmt.Sprintf("Connecting to %s", network.Name), Spinner: true})
	chain, err := uc.connector.Connect(ctx, network)
	if err != nil {
		return nil, err
	}
	defer chain.Close()

	deployer, err := selectAccount(chain.Accounts(), params.From)
	if err != nil {
		return nil, err
	}
	uc.sink.Info(fmt.Sprintf("Deploying the contracts with the account: %s", deployer.Hex()))

	if !network.Local && !uc.config.NonInteractive && uc.confirmer != nil {
		ok, err := uc.confirmer.Confirm(ctx, fmt.Sprintf("Deploy %s to %s (chain %d)?", alias, network.Name, chain.ChainID()))
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, domain.ErrAborted
		}
	}

	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "deploying", Message: fmt.Sprintf("Deploying %s", alias), Spinner: true})
	receipt, err := chain.Deploy(ctx, deployer, artifact)
	if err != nil {
		return nil, err
	}
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "deployed", Message: "Deployed"})
	uc.sink.Info(fmt.Sprintf("%s smart contract address: %s", alias, receipt.Address.Hex()))

	deployment := &models.Deployment{
		ID:              models.DeploymentID(network.Name, chain.ChainID(), alias),
		Network:         network.Name,
		ChainID:         chain.ChainID(),
		ContractName:    artifact.ContractName,
		Alias:           alias,
		Address:         receipt.Address.Hex(),
		TransactionHash: receipt.TransactionHash.Hex(),
		BlockNumber:     receipt.BlockNumber,
		GasUsed:         receipt.GasUsed,
		Deployer:        receipt.Deployer.Hex(),
		ArtifactPath:    artifact.Path,
		SourceName:      artifact.SourceName,
		CreatedAt:       time.Now().UTC(),
	}
	result := &DeployContractResult{Deployment: deployment, Network: network}

	files, err := BuildFrontendFiles(alias, receipt.Address, artifact.Raw)
	if err != nil {
		return nil, err
	}
	if result.FrontendDir, err = uc.frontend.WriteFrontendFiles(ctx, files); err != nil {
		return nil, fmt.Errorf("failed to save frontend files: %w", err)
	}

	if uc.publisher != nil && uc.publisher.Enabled() {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "publishing", Message: "Publishing frontend files", Spinner: true})
		if result.PublishedTo, err = uc.publisher.Publish(ctx, files); err != nil {
			return nil, fmt.Errorf("failed to publish frontend files: %w", err)
		}
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "published", Message: "Published"})
	}

	if !network.IsEphemeral() {
		if err := uc.registry.SaveDeployment(ctx, deployment); err != nil {
			return nil, fmt.Errorf("failed to record deployment: %w", err)
		}
		result.Recorded = true
	}

	return result, nil
}

// DeriveAlias upper-cases the first letter of a contract name: voting -> Voting.
func DeriveAlias(contractName string) string {
	return cases.Title(language.Und, cases.NoLower).String(contractName)
}

// BuildFrontendFiles renders the address map and the re-indented artifact.
// Neither file ends with a newline.
func BuildFrontendFiles(alias string, address common.Address, rawArtifact []byte) ([]models.FrontendFile, error) {
	addresses, err := json.MarshalIndent(map[string]string{alias: address.Hex()}, "", "  ")
	if err != nil {
		return nil, err
	}

	var artifact bytes.Buffer
	if err := json.Indent(&artifact, rawArtifact, "", "  "); err != nil {
		return nil, fmt.Errorf("failed to format artifact of %s: %w", alias, err)
	}

	return []models.FrontendFile{
		{Name: ContractAddressFile, Content: addresses},
		{Name: alias + ".json", Content: artifact.Bytes()},
	}, nil
}

// selectAccount picks the account matching from, or the first one.
// from is either a hex address or a decimal index into accounts.
func selectAccount(accounts []common.Address, from string) (common.Address, error) {
	if len(accounts) == 0 {
		return common.Address{}, domain.ErrNoSigner
	}
	if from == "" {
		return accounts[0], nil
	}
	if index, err := strconv.Atoi(from); err == nil {
		if index < 0 || index >= len(accounts) {
			return common.Address{}, fmt.Errorf("%w: account index %d out of range (%d accounts)", domain.ErrNoSigner, index, len(accounts))
		}
		return accounts[index], nil
	}
	if !common.IsHexAddress(from) {
		return common.Address{}, fmt.Errorf("%w: %s", domain.ErrInvalidAddress, from)
	}
	want := common.HexToAddress(from)
	if !lo.Contains(accounts, want) {
		return common.Address{}, fmt.Errorf("%w: %s is not configured on this network", domain.ErrNoSigner, want.Hex())
	}
	return want, nil
}
