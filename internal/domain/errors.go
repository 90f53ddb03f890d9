package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrInvalidAddress is returned when an Ethereum address is invalid
	ErrInvalidAddress = errors.New("invalid address")

	// ErrNetworkMismatch is returned when the RPC reports a different chain ID than configured
	ErrNetworkMismatch = errors.New("network mismatch")

	// ErrNetworkNotFound is returned when a network is neither built in nor configured
	ErrNetworkNotFound = errors.New("network not found")

	// ErrContractNotFound is returned when no artifact matches a contract name
	ErrContractNotFound = errors.New("contract not found")

	// ErrNoBytecode is returned when deploying an artifact without creation code
	ErrNoBytecode = errors.New("artifact has no bytecode")

	// ErrNoSigner is returned when a network has no usable account
	ErrNoSigner = errors.New("no signer available")

	// ErrDeploymentFailed is returned when the creation transaction reverted or left no code
	ErrDeploymentFailed = errors.New("deployment failed")

	// ErrTransactionFailed is returned when a contract call transaction reverted
	ErrTransactionFailed = errors.New("transaction failed")

	// ErrAborted is returned when the user declines a confirmation prompt
	ErrAborted = errors.New("aborted by user")
)

// ContractNotFoundErr carries the lookup query and close matches.
type ContractNotFoundErr struct {
	Query       string
	Suggestions []string
}

func (e ContractNotFoundErr) Error() string {
	if len(e.Suggestions) == 0 {
		return fmt.Sprintf("no artifact found for contract %q", e.Query)
	}
	return fmt.Sprintf("no artifact found for contract %q, did you mean: %s?",
		e.Query, strings.Join(e.Suggestions, ", "))
}

func (e ContractNotFoundErr) Unwrap() error {
	return ErrContractNotFound
}

// AmbiguousContractErr is returned when a contract name matches several artifacts.
type AmbiguousContractErr struct {
	Query   string
	Matches []*ContractRef
}

func (e AmbiguousContractErr) Error() string {
	sorted := make([]*ContractRef, len(e.Matches))
	copy(sorted, e.Matches)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].FullyQualifiedName() < sorted[j].FullyQualifiedName()
	})

	var suggestions []string
	for _, ref := range sorted {
		suggestions = append(suggestions, fmt.Sprintf("  - %s", ref.FullyQualifiedName()))
	}

	return fmt.Sprintf("multiple artifacts found for %q - use path:contract format to disambiguate:\n%s",
		e.Query, strings.Join(suggestions, "\n"))
}

// ContractRef identifies a compiled contract inside the artifact directory.
type ContractRef struct {
	Name         string
	SourceName   string
	ArtifactPath string
}

// FullyQualifiedName returns "source:Name", the form accepted to disambiguate lookups.
func (r *ContractRef) FullyQualifiedName() string {
	if r.SourceName == "" {
		return r.Name
	}
	return r.SourceName + ":" + r.Name
}
