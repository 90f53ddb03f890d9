package models

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ArtifactFormat identifies the toolchain that produced an artifact
type ArtifactFormat string

const (
	ArtifactFormatHardhat ArtifactFormat = "hardhat"
	ArtifactFormatFoundry ArtifactFormat = "foundry"
)

// Artifact is a compiled contract: interface plus creation bytecode.
// Raw keeps the file exactly as the compiler wrote it.
type Artifact struct {
	ContractName string          `json:"contractName"`
	SourceName   string          `json:"sourceName"`
	Format       ArtifactFormat  `json:"format"`
	Path         string          `json:"path"`
	ABI          json.RawMessage `json:"abi"`
	Bytecode     []byte          `json:"-"`
	Raw          json.RawMessage `json:"-"`
}

// ParseABI parses the artifact's ABI section
func (a *Artifact) ParseABI() (*abi.ABI, error) {
	if len(a.ABI) == 0 {
		return &abi.ABI{}, nil
	}
	parsed, err := abi.JSON(strings.NewReader(string(a.ABI)))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s: %w", a.ContractName, err)
	}
	return &parsed, nil
}

// HasBytecode reports whether the artifact can be deployed
func (a *Artifact) HasBytecode() bool {
	return len(a.Bytecode) > 0
}

// FullyQualifiedName returns "source:Name"
func (a *Artifact) FullyQualifiedName() string {
	if a.SourceName == "" {
		return a.ContractName
	}
	return a.SourceName + ":" + a.ContractName
}
