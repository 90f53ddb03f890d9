package usecase

import (
	"context"
	"math/big"

	"github.com/dappctl/dappctl/internal/domain"
	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
)

// ArtifactRepository provides access to compiled contracts
type ArtifactRepository interface {
	// FindArtifact looks up a contract by name or "source:Name". It returns
	// domain.ContractNotFoundErr or domain.AmbiguousContractErr when the
	// query does not identify exactly one artifact.
	FindArtifact(ctx context.Context, query string) (*models.Artifact, error)
	LoadArtifact(ctx context.Context, ref *domain.ContractRef) (*models.Artifact, error)
	ListContracts(ctx context.Context) ([]*domain.ContractRef, error)
}

// Compiler builds the project's contracts
type Compiler interface {
	Compile(ctx context.Context) error
}

// NetworkResolver resolves network names to configurations
type NetworkResolver interface {
	Names() []string
	Resolve(name string) (*config.Network, error)
}

// ChainConnector opens a session on a network
type ChainConnector interface {
	Connect(ctx context.Context, network *config.Network) (Chain, error)
}

// Chain is an open connection to a network together with its signers.
// Transactions are signed by whichever configured account matches from.
type Chain interface {
	Network() *config.Network
	ChainID() uint64
	Accounts() []common.Address
	Balance(ctx context.Context, account common.Address) (*big.Int, error)
	Deploy(ctx context.Context, from common.Address, artifact *models.Artifact, args ...interface{}) (*models.DeployReceipt, error)
	Healthcare(address common.Address) (HealthcareContract, error)
	Close() error
}

// HealthcareContract is the call surface of a deployed Healthcare contract
type HealthcareContract interface {
	Address() common.Address

	AuthorizeDoctor(ctx context.Context, from, doctor common.Address, name, specialization string) (*models.TxResult, error)
	AddPatientRecord(ctx context.Context, from, patient common.Address, name string, age uint64, medicalHistory string) (*models.TxResult, error)
	UpdatePatientRecord(ctx context.Context, from, patient common.Address, name string, age uint64, medicalHistory string) (*models.TxResult, error)

	Admin(ctx context.Context) (common.Address, error)
	IsAuthorizedDoctor(ctx context.Context, doctor common.Address) (bool, error)
	Doctor(ctx context.Context, doctor common.Address) (*models.Doctor, error)
	PatientRecord(ctx context.Context, patient common.Address) (*models.PatientRecord, error)
	DoctorCount(ctx context.Context) (uint64, error)
	DoctorsBySpecialization(ctx context.Context, specialization string) ([]common.Address, error)
}

// FrontendWriter persists the files the web frontend imports
type FrontendWriter interface {
	WriteFrontendFiles(ctx context.Context, files []models.FrontendFile) (string, error)
}

// FrontendPublisher mirrors frontend files to remote storage
type FrontendPublisher interface {
	Enabled() bool
	Publish(ctx context.Context, files []models.FrontendFile) (string, error)
}

// DeploymentRepository handles persistence of deployments
type DeploymentRepository interface {
	SaveDeployment(ctx context.Context, deployment *models.Deployment) error
	GetDeployment(ctx context.Context, id string) (*models.Deployment, error)
	ListDeployments(ctx context.Context, filter domain.DeploymentFilter) ([]*models.Deployment, error)
	// LatestDeployment returns the most recent deployment of a contract on a network
	LatestDeployment(ctx context.Context, network, contract string) (*models.Deployment, error)
}

// ContractSelector handles interactive selection of ambiguous artifacts
type ContractSelector interface {
	SelectContract(ctx context.Context, contracts []*domain.ContractRef, prompt string) (*domain.ContractRef, error)
}

// Confirmer asks the user for a yes/no decision
type Confirmer interface {
	Confirm(ctx context.Context, prompt string) (bool, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage    string
	Current  int
	Total    int
	Message  string
	Spinner  bool
	Metadata interface{}
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
