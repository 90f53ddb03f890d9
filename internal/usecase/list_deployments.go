package usecase

import (
	"context"
	"sort"

	"github.com/dappctl/dappctl/internal/domain"
	"github.com/dappctl/dappctl/internal/domain/models"
)

// ListDeploymentsParams contains parameters for listing deployments
type ListDeploymentsParams struct {
	Network      string
	ContractName string
}

// DeploymentListResult contains the result of listing deployments
type DeploymentListResult struct {
	Deployments []*models.Deployment
	Summary     DeploymentSummary
}

// DeploymentSummary provides summary statistics
type DeploymentSummary struct {
	Total     int
	ByNetwork map[string]int
}

// ListDeployments is the use case for listing deployments
type ListDeployments struct {
	store DeploymentRepository
	sink  ProgressSink
}

// NewListDeployments creates a new ListDeployments use case
func NewListDeployments(store DeploymentRepository, sink ProgressSink) *ListDeployments {
	return &ListDeployments{
		store: store,
		sink:  sink,
	}
}

// Run executes the list deployments use case
func (uc *ListDeployments) Run(ctx context.Context, params ListDeploymentsParams) (*DeploymentListResult, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "loading",
		Message: "Loading deployments from registry",
		Spinner: true,
	})

	deployments, err := uc.store.ListDeployments(ctx, domain.DeploymentFilter{
		Network:      params.Network,
		ContractName: params.ContractName,
	})
	if err != nil {
		return nil, err
	}

	sortDeployments(deployments)

	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "complete",
		Current: len(deployments),
		Total:   len(deployments),
		Message: "Deployments loaded",
	})

	return &DeploymentListResult{
		Deployments: deployments,
		Summary:     calculateSummary(deployments),
	}, nil
}

// sortDeployments sorts by network, chain, alias, then newest first
func sortDeployments(deployments []*models.Deployment) {
	sort.SliceStable(deployments, func(i, j int) bool {
		a, b := deployments[i], deployments[j]
		if a.Network != b.Network {
			return a.Network < b.Network
		}
		if a.ChainID != b.ChainID {
			return a.ChainID < b.ChainID
		}
		if a.DisplayName() != b.DisplayName() {
			return a.DisplayName() < b.DisplayName()
		}
		return a.CreatedAt.After(b.CreatedAt)
	})
}

func calculateSummary(deployments []*models.Deployment) DeploymentSummary {
	summary := DeploymentSummary{
		Total:     len(deployments),
		ByNetwork: make(map[string]int),
	}
	for _, dep := range deployments {
		summary.ByNetwork[dep.Network]++
	}
	return summary
}
