package domain

import "strings"

// DeploymentFilter defines filtering options for deployments
type DeploymentFilter struct {
	Network      string
	ChainID      uint64
	ContractName string
}

// Matches reports whether a deployment with the given fields passes the filter.
// Contract matches either the artifact name or the alias, case-insensitively.
func (f DeploymentFilter) Matches(network string, chainID uint64, contractName, alias string) bool {
	if f.Network != "" && f.Network != network {
		return false
	}
	if f.ChainID != 0 && f.ChainID != chainID {
		return false
	}
	if f.ContractName != "" && !strings.EqualFold(f.ContractName, contractName) && !strings.EqualFold(f.ContractName, alias) {
		return false
	}
	return true
}
