package adapters

import (
	"github.com/dappctl/dappctl/internal/adapters/blockchain"
	"github.com/dappctl/dappctl/internal/adapters/compiler"
	"github.com/dappctl/dappctl/internal/adapters/fs"
	"github.com/dappctl/dappctl/internal/adapters/interactive"
	"github.com/dappctl/dappctl/internal/adapters/repository/contracts"
	"github.com/dappctl/dappctl/internal/adapters/repository/deployments"
	"github.com/dappctl/dappctl/internal/adapters/storage"
	"github.com/dappctl/dappctl/internal/config"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/google/wire"
)

// RepositorySet provides artifact and deployment repositories
var RepositorySet = wire.NewSet(
	contracts.NewRepository,
	wire.Bind(new(usecase.ArtifactRepository), new(*contracts.Repository)),
	wire.Bind(new(compiler.ArtifactIndex), new(*contracts.Repository)),

	deployments.NewFileRepository,
	wire.Bind(new(usecase.DeploymentRepository), new(*deployments.FileRepository)),
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewFrontendWriterAdapter,
	wire.Bind(new(usecase.FrontendWriter), new(*fs.FrontendWriterAdapter)),
)

// StorageSet provides remote storage for frontend files
var StorageSet = wire.NewSet(
	storage.NewS3Publisher,
	wire.Bind(new(usecase.FrontendPublisher), new(*storage.S3Publisher)),
)

// CompilerSet provides the contract compiler
var CompilerSet = wire.NewSet(
	compiler.NewCompiler,
	wire.Bind(new(usecase.Compiler), new(*compiler.Compiler)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.ContractSelector), new(*interactive.SelectorAdapter)),
	wire.Bind(new(usecase.Confirmer), new(*interactive.SelectorAdapter)),
)

// ConfigSet provides configuration-based implementations
var ConfigSet = wire.NewSet(
	config.ProvideNetworkResolver,
	wire.Bind(new(usecase.NetworkResolver), new(*config.NetworkResolver)),
)

// BlockchainSet provides blockchain-based implementations
var BlockchainSet = wire.NewSet(
	blockchain.NewConnector,
	wire.Bind(new(usecase.ChainConnector), new(*blockchain.Connector)),
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	RepositorySet,
	FSSet,
	StorageSet,
	CompilerSet,
	InteractiveSet,
	ConfigSet,
	BlockchainSet,
)
