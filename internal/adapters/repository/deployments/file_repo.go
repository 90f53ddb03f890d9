package deployments

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/dappctl/dappctl/internal/domain"
	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/dappctl/dappctl/internal/usecase"
)

const (
	DeploymentsFile = "deployments.json"
	AddressesFile   = "addresses.json"
)

// AddressBook maps chain ID -> alias -> address, for scripts that only need addresses
type AddressBook map[uint64]map[string]string

// FileRepository stores deployments in json files under the data directory
type FileRepository struct {
	dataDir     string
	mu          sync.RWMutex
	deployments map[string]*models.Deployment
	addresses   AddressBook
}

// NewFileRepository creates a new deployment registry
func NewFileRepository(cfg *config.RuntimeConfig) (*FileRepository, error) {
	m := &FileRepository{
		dataDir:     cfg.DataDir,
		deployments: make(map[string]*models.Deployment),
		addresses:   make(AddressBook),
	}

	if err := m.load(); err != nil {
		return nil, fmt.Errorf("failed to load registry: %w", err)
	}

	return m, nil
}

// load reads the registry file if present
func (m *FileRepository) load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	data, err := os.ReadFile(filepath.Join(m.dataDir, DeploymentsFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err := json.Unmarshal(data, &m.deployments); err != nil {
		return fmt.Errorf("failed to parse %s: %w", DeploymentsFile, err)
	}

	m.rebuildAddressBook()
	return nil
}

// save writes all registry files
func (m *FileRepository) save() error {
	if err := os.MkdirAll(m.dataDir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", m.dataDir, err)
	}
	if err := m.saveFile(DeploymentsFile, m.deployments); err != nil {
		return fmt.Errorf("failed to save deployments: %w", err)
	}
	if err := m.saveFile(AddressesFile, m.addresses); err != nil {
		return fmt.Errorf("failed to save address book: %w", err)
	}
	return nil
}

// saveFile saves data to a JSON file in the data directory
func (m *FileRepository) saveFile(filename string, v any) error {
	path := filepath.Join(m.dataDir, filename)

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	// Write to temp file first
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return err
	}

	// Atomic rename
	return os.Rename(tmpPath, path)
}

// rebuildAddressBook maps chain ID and alias to an address. When several
// networks share a chain ID, the newest deployment of an alias wins.
func (m *FileRepository) rebuildAddressBook() {
	deployments := make([]*models.Deployment, 0, len(m.deployments))
	for _, dep := range m.deployments {
		deployments = append(deployments, dep)
	}
	sort.Slice(deployments, func(i, j int) bool {
		if !deployments[i].CreatedAt.Equal(deployments[j].CreatedAt) {
			return deployments[i].CreatedAt.Before(deployments[j].CreatedAt)
		}
		return deployments[i].ID < deployments[j].ID
	})

	m.addresses = make(AddressBook)
	for _, dep := range deployments {
		if m.addresses[dep.ChainID] == nil {
			m.addresses[dep.ChainID] = make(map[string]string)
		}
		m.addresses[dep.ChainID][dep.DisplayName()] = dep.Address
	}
}

// SaveDeployment records a deployment, replacing any previous one with the same ID
func (m *FileRepository) SaveDeployment(ctx context.Context, deployment *models.Deployment) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clone := *deployment
	m.deployments[deployment.ID] = &clone
	m.rebuildAddressBook()

	return m.save()
}

// GetDeployment retrieves a deployment by ID
func (m *FileRepository) GetDeployment(ctx context.Context, id string) (*models.Deployment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	dep, exists := m.deployments[id]
	if !exists {
		return nil, fmt.Errorf("deployment %s: %w", id, domain.ErrNotFound)
	}

	// Clone to avoid mutations
	clone := *dep
	return &clone, nil
}

// ListDeployments returns deployments matching the filter, in ID order
func (m *FileRepository) ListDeployments(ctx context.Context, filter domain.DeploymentFilter) ([]*models.Deployment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var results []*models.Deployment
	for _, dep := range m.deployments {
		if !filter.Matches(dep.Network, dep.ChainID, dep.ContractName, dep.Alias) {
			continue
		}
		clone := *dep
		results = append(results, &clone)
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].ID < results[j].ID
	})
	return results, nil
}

// LatestDeployment returns the newest deployment of contract on network
func (m *FileRepository) LatestDeployment(ctx context.Context, network, contract string) (*models.Deployment, error) {
	deployments, err := m.ListDeployments(ctx, domain.DeploymentFilter{Network: network, ContractName: contract})
	if err != nil {
		return nil, err
	}
	if len(deployments) == 0 {
		return nil, fmt.Errorf("%s on %s: %w", contract, network, domain.ErrNotFound)
	}

	latest := deployments[0]
	for _, dep := range deployments[1:] {
		if dep.CreatedAt.After(latest.CreatedAt) {
			latest = dep
		}
	}
	return latest, nil
}

// Ensure the adapter implements the interface
var _ usecase.DeploymentRepository = (*FileRepository)(nil)
