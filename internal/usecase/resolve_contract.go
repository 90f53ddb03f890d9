package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/dappctl/dappctl/internal/domain"
	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/domain/models"
)

// ResolveContract is the use case for resolving a contract name to its artifact
type ResolveContract struct {
	config    *config.RuntimeConfig
	artifacts ArtifactRepository
	selector  ContractSelector
	sink      ProgressSink
}

// NewResolveContract creates a new ResolveContract use case
func NewResolveContract(
	cfg *config.RuntimeConfig,
	artifacts ArtifactRepository,
	selector ContractSelector,
	sink ProgressSink,
) *ResolveContract {
	return &ResolveContract{
		config:    cfg,
		artifacts: artifacts,
		selector:  selector,
		sink:      sink,
	}
}

// Run resolves a contract reference to a deployable artifact
func (uc *ResolveContract) Run(ctx context.Context, contractRef string) (*models.Artifact, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "resolving",
		Message: fmt.Sprintf("Resolving contract: %s", contractRef),
		Spinner: true,
	})

	artifact, err := uc.artifacts.FindArtifact(ctx, contractRef)
	if err == nil {
		return uc.checkDeployable(artifact)
	}

	var ambiguous domain.AmbiguousContractErr
	if !errors.As(err, &ambiguous) || uc.selector == nil || uc.config.NonInteractive {
		return nil, err
	}

	// Multiple matches - let the user pick one
	selected, err := uc.selector.SelectContract(ctx, ambiguous.Matches,
		fmt.Sprintf("Multiple contracts found for '%s'. Select one:", contractRef))
	if err != nil {
		return nil, fmt.Errorf("contract selection failed: %w", err)
	}

	artifact, err = uc.artifacts.LoadArtifact(ctx, selected)
	if err != nil {
		return nil, err
	}
	return uc.checkDeployable(artifact)
}

func (uc *ResolveContract) checkDeployable(artifact *models.Artifact) (*models.Artifact, error) {
	if !artifact.HasBytecode() {
		return nil, fmt.Errorf("%w: %s is abstract or an interface", domain.ErrNoBytecode, artifact.FullyQualifiedName())
	}
	return artifact, nil
}
