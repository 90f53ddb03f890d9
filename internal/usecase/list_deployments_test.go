package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dappctl/dappctl/internal/domain"
	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListDeployments(t *testing.T) {
	ctx := context.Background()
	now := time.Now()

	t.Run("sorted with summary", func(t *testing.T) {
		deployments := []*models.Deployment{
			{ID: "sepolia/11155111/Voting", Network: "sepolia", ChainID: 11155111, Alias: "Voting", CreatedAt: now},
			{ID: "localhost/31337/Voting", Network: "localhost", ChainID: 31337, Alias: "Voting", CreatedAt: now.Add(-time.Hour)},
			{ID: "localhost/31337/Healthcare", Network: "localhost", ChainID: 31337, Alias: "Healthcare", CreatedAt: now},
		}
		store := &MockDeploymentRepository{}
		store.On("ListDeployments", ctx, domain.DeploymentFilter{ContractName: "x"}).Return(deployments, nil)

		sink := &recordingSink{}
		result, err := usecase.NewListDeployments(store, sink).Run(ctx, usecase.ListDeploymentsParams{ContractName: "x"})
		require.NoError(t, err)

		ids := []string{}
		for _, d := range result.Deployments {
			ids = append(ids, d.ID)
		}
		assert.Equal(t, []string{"localhost/31337/Healthcare", "localhost/31337/Voting", "sepolia/11155111/Voting"}, ids)
		assert.Equal(t, 3, result.Summary.Total)
		assert.Equal(t, 2, result.Summary.ByNetwork["localhost"])
		require.NotEmpty(t, sink.events)
		assert.Equal(t, "complete", sink.events[len(sink.events)-1].Stage)
	})

	t.Run("store error", func(t *testing.T) {
		store := &MockDeploymentRepository{}
		store.On("ListDeployments", ctx, domain.DeploymentFilter{}).Return(nil, errors.New("corrupt registry"))

		_, err := usecase.NewListDeployments(store, usecase.NopProgress{}).Run(ctx, usecase.ListDeploymentsParams{})
		require.EqualError(t, err, "corrupt registry")
	})
}
