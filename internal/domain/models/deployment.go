package models

import (
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// Deployment represents a contract deployment record
type Deployment struct {
	// Core identification
	ID           string `json:"id"` // e.g., "localhost/31337/Voting"
	Network      string `json:"network"`
	ChainID      uint64 `json:"chainId"`
	ContractName string `json:"contractName"` // name in the artifact, e.g. "voting"
	Alias        string `json:"alias"`        // name the frontend sees, e.g. "Voting"
	Address      string `json:"address"`

	// Creation transaction
	TransactionHash string `json:"transactionHash"`
	BlockNumber     uint64 `json:"blockNumber"`
	GasUsed         uint64 `json:"gasUsed"`
	Deployer        string `json:"deployer"`

	// Artifact information
	ArtifactPath string `json:"artifactPath"`
	SourceName   string `json:"sourceName,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// DeploymentID builds the registry key for a deployment
func DeploymentID(network string, chainID uint64, alias string) string {
	return fmt.Sprintf("%s/%d/%s", network, chainID, alias)
}

// DisplayName returns the alias, falling back to the contract name
func (d *Deployment) DisplayName() string {
	if d.Alias != "" {
		return d.Alias
	}
	return d.ContractName
}

// FrontendFile is one file published for the web frontend
type FrontendFile struct {
	Name    string
	Content []byte
}

// DeployReceipt is the mined result of a creation transaction
type DeployReceipt struct {
	Address         common.Address
	TransactionHash common.Hash
	BlockNumber     uint64
	GasUsed         uint64
	Deployer        common.Address
}
