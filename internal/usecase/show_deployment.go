package usecase

import (
	"context"
	"strings"

	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/domain/models"
)

// ShowDeploymentParams contains parameters for showing a deployment
type ShowDeploymentParams struct {
	// Ref is a registry ID ("network/chainId/Alias") or a contract name on the current network
	Ref string
}

// ShowDeployment is the use case for showing deployment details
type ShowDeployment struct {
	config *config.RuntimeConfig
	store  DeploymentRepository
	sink   ProgressSink
}

// NewShowDeployment creates a new ShowDeployment use case
func NewShowDeployment(cfg *config.RuntimeConfig, store DeploymentRepository, sink ProgressSink) *ShowDeployment {
	return &ShowDeployment{
		config: cfg,
		store:  store,
		sink:   sink,
	}
}

// Run executes the show deployment use case
func (uc *ShowDeployment) Run(ctx context.Context, params ShowDeploymentParams) (*models.Deployment, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading deployment details",
		Spinner: true,
	})
	defer uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete", Message: "Deployment loaded"})

	if strings.Count(params.Ref, "/") == 2 {
		return uc.store.GetDeployment(ctx, params.Ref)
	}
	return uc.store.LatestDeployment(ctx, uc.config.Network.Name, params.Ref)
}
