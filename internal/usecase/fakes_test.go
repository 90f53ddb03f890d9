package usecase_test

import (
	"context"
	"fmt"
	"math/big"
	"sync"

	"github.com/dappctl/dappctl/internal/domain"
	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
)

var (
	adminAddr   = common.HexToAddress("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	doctor1Addr = common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
	doctor2Addr = common.HexToAddress("0x3C44CdDdB6a900fa2b585dd299e03d12FA4293BC")
	patientAddr = common.HexToAddress("0x90F79bf6EB2c8F870B01a38dda4e7b8f8B9F0906")
)

// MockArtifactRepository is a mock implementation of ArtifactRepository
type MockArtifactRepository struct {
	mock.Mock
}

func (m *MockArtifactRepository) FindArtifact(ctx context.Context, query string) (*models.Artifact, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artifact), args.Error(1)
}

func (m *MockArtifactRepository) LoadArtifact(ctx context.Context, ref *domain.ContractRef) (*models.Artifact, error) {
	args := m.Called(ctx, ref)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Artifact), args.Error(1)
}

func (m *MockArtifactRepository) ListContracts(ctx context.Context) ([]*domain.ContractRef, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ContractRef), args.Error(1)
}

// MockDeploymentRepository is a mock implementation of DeploymentRepository
type MockDeploymentRepository struct {
	mock.Mock
}

func (m *MockDeploymentRepository) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	return m.Called(ctx, deployment).Error(0)
}

func (m *MockDeploymentRepository) GetDeployment(ctx context.Context, id string) (*models.Deployment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deployment), args.Error(1)
}

func (m *MockDeploymentRepository) ListDeployments(ctx context.Context, filter domain.DeploymentFilter) ([]*models.Deployment, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Deployment), args.Error(1)
}

func (m *MockDeploymentRepository) LatestDeployment(ctx context.Context, network, contract string) (*models.Deployment, error) {
	args := m.Called(ctx, network, contract)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Deployment), args.Error(1)
}

// MockContractSelector is a mock implementation of ContractSelector
type MockContractSelector struct {
	mock.Mock
}

func (m *MockContractSelector) SelectContract(ctx context.Context, contracts []*domain.ContractRef, prompt string) (*domain.ContractRef, error) {
	args := m.Called(ctx, contracts, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContractRef), args.Error(1)
}

// MockConfirmer is a mock implementation of Confirmer
type MockConfirmer struct {
	mock.Mock
}

func (m *MockConfirmer) Confirm(ctx context.Context, prompt string) (bool, error) {
	args := m.Called(ctx, prompt)
	return args.Bool(0), args.Error(1)
}

// stubCompiler counts compilations
type stubCompiler struct {
	calls int
	err   error
}

func (c *stubCompiler) Compile(context.Context) error {
	c.calls++
	return c.err
}

// memFrontend keeps written frontend files in memory
type memFrontend struct {
	files map[string][]byte
}

func (f *memFrontend) WriteFrontendFiles(_ context.Context, files []models.FrontendFile) (string, error) {
	if f.files == nil {
		f.files = map[string][]byte{}
	}
	for _, file := range files {
		f.files[file.Name] = file.Content
	}
	return "/project/src/contracts", nil
}

// recordingSink collects progress output
type recordingSink struct {
	events []usecase.ProgressEvent
	infos  []string
}

func (s *recordingSink) OnProgress(_ context.Context, event usecase.ProgressEvent) {
	s.events = append(s.events, event)
}
func (s *recordingSink) Info(message string) { s.infos = append(s.infos, message) }
func (s *recordingSink) Error(string)        {}

// fakeConnector hands out one fakeChain
type fakeConnector struct {
	chain *fakeChain
	err   error
}

func (c *fakeConnector) Connect(_ context.Context, network *config.Network) (usecase.Chain, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.chain.network = network
	return c.chain, nil
}

// fakeChain deploys in-memory Healthcare contracts
type fakeChain struct {
	mu        sync.Mutex
	network   *config.Network
	chainID   uint64
	accounts  []common.Address
	nonce     int
	deployed  []*models.Artifact
	contracts map[common.Address]*fakeHealthcare
	deployErr error
	closed    bool
	// breakUpdates makes updatePatientRecord a no-op on new instances
	breakUpdates bool
}

func newFakeChain() *fakeChain {
	return &fakeChain{
		chainID:   31337,
		accounts:  []common.Address{adminAddr, doctor1Addr, doctor2Addr, patientAddr},
		contracts: map[common.Address]*fakeHealthcare{},
	}
}

func (c *fakeChain) Network() *config.Network  { return c.network }
func (c *fakeChain) ChainID() uint64           { return c.chainID }
func (c *fakeChain) Accounts() []common.Address { return c.accounts }

func (c *fakeChain) Balance(_ context.Context, _ common.Address) (*big.Int, error) {
	return big.NewInt(1e18), nil
}

func (c *fakeChain) Deploy(_ context.Context, from common.Address, artifact *models.Artifact, _ ...interface{}) (*models.DeployReceipt, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.deployErr != nil {
		return nil, c.deployErr
	}

	c.nonce++
	address := common.BigToAddress(big.NewInt(int64(0x1000 + c.nonce)))
	c.deployed = append(c.deployed, artifact)
	c.contracts[address] = &fakeHealthcare{
		address:      address,
		admin:        from,
		doctors:      map[common.Address]*models.Doctor{},
		patients:     map[common.Address]*models.PatientRecord{},
		breakUpdates: c.breakUpdates,
	}

	return &models.DeployReceipt{
		Address:         address,
		TransactionHash: common.BigToHash(big.NewInt(int64(c.nonce))),
		BlockNumber:     uint64(c.nonce),
		GasUsed:         21000,
		Deployer:        from,
	}, nil
}

func (c *fakeChain) Healthcare(address common.Address) (usecase.HealthcareContract, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	contract, ok := c.contracts[address]
	if !ok {
		return nil, fmt.Errorf("no contract code at %s", address.Hex())
	}
	return contract, nil
}

func (c *fakeChain) Close() error {
	c.closed = true
	return nil
}

// fakeHealthcare mirrors the Healthcare contract's rules
type fakeHealthcare struct {
	address      common.Address
	admin        common.Address
	doctors      map[common.Address]*models.Doctor
	patients     map[common.Address]*models.PatientRecord
	count        uint64
	breakUpdates bool
}

func (h *fakeHealthcare) Address() common.Address { return h.address }

func (h *fakeHealthcare) tx() *models.TxResult {
	return &models.TxResult{GasUsed: 50000}
}

func (h *fakeHealthcare) AuthorizeDoctor(_ context.Context, from, doctor common.Address, name, specialization string) (*models.TxResult, error) {
	if from != h.admin {
		return nil, fmt.Errorf("%w: Only admin can perform this action", domain.ErrTransactionFailed)
	}
	if _, exists := h.doctors[doctor]; !exists {
		h.count++
	}
	h.doctors[doctor] = &models.Doctor{Address: doctor, Name: name, Specialization: specialization, Authorized: true}
	return h.tx(), nil
}

func (h *fakeHealthcare) AddPatientRecord(_ context.Context, from, patient common.Address, name string, age uint64, history string) (*models.TxResult, error) {
	if _, ok := h.doctors[from]; !ok {
		return nil, fmt.Errorf("%w: Only authorized doctors can perform this action", domain.ErrTransactionFailed)
	}
	h.patients[patient] = &models.PatientRecord{Patient: patient, Name: name, Age: age, MedicalHistory: history}
	return h.tx(), nil
}

func (h *fakeHealthcare) UpdatePatientRecord(ctx context.Context, from, patient common.Address, name string, age uint64, history string) (*models.TxResult, error) {
	if h.breakUpdates {
		return h.tx(), nil
	}
	return h.AddPatientRecord(ctx, from, patient, name, age, history)
}

func (h *fakeHealthcare) Admin(context.Context) (common.Address, error) { return h.admin, nil }

func (h *fakeHealthcare) IsAuthorizedDoctor(_ context.Context, doctor common.Address) (bool, error) {
	_, ok := h.doctors[doctor]
	return ok, nil
}

func (h *fakeHealthcare) Doctor(_ context.Context, doctor common.Address) (*models.Doctor, error) {
	if d, ok := h.doctors[doctor]; ok {
		copied := *d
		copied.Authorized = false
		return &copied, nil
	}
	return &models.Doctor{Address: doctor}, nil
}

func (h *fakeHealthcare) PatientRecord(_ context.Context, patient common.Address) (*models.PatientRecord, error) {
	if p, ok := h.patients[patient]; ok {
		copied := *p
		return &copied, nil
	}
	return &models.PatientRecord{Patient: patient}, nil
}

func (h *fakeHealthcare) DoctorCount(context.Context) (uint64, error) { return h.count, nil }

func (h *fakeHealthcare) DoctorsBySpecialization(_ context.Context, specialization string) ([]common.Address, error) {
	var out []common.Address
	for address, d := range h.doctors {
		if d.Specialization == specialization {
			out = append(out, address)
		}
	}
	return out, nil
}
