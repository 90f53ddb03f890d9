package usecase_test

import (
	"context"
	"testing"

	"github.com/dappctl/dappctl/internal/domain"
	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShowDeployment(t *testing.T) {
	ctx := context.Background()
	cfg := &config.RuntimeConfig{Network: &config.Network{Name: "localhost", ChainID: 31337}}
	voting := &models.Deployment{ID: "localhost/31337/Voting", Network: "localhost", ChainID: 31337, Alias: "Voting"}

	t.Run("by id", func(t *testing.T) {
		store := &MockDeploymentRepository{}
		store.On("GetDeployment", ctx, "localhost/31337/Voting").Return(voting, nil)

		dep, err := usecase.NewShowDeployment(cfg, store, usecase.NopProgress{}).Run(ctx, usecase.ShowDeploymentParams{Ref: "localhost/31337/Voting"})
		require.NoError(t, err)
		assert.Same(t, voting, dep)
		store.AssertExpectations(t)
	})

	t.Run("by name on the current network", func(t *testing.T) {
		store := &MockDeploymentRepository{}
		store.On("LatestDeployment", ctx, "localhost", "voting").Return(voting, nil)

		dep, err := usecase.NewShowDeployment(cfg, store, usecase.NopProgress{}).Run(ctx, usecase.ShowDeploymentParams{Ref: "voting"})
		require.NoError(t, err)
		assert.Same(t, voting, dep)
		store.AssertNotCalled(t, "GetDeployment")
	})

	t.Run("not found", func(t *testing.T) {
		store := &MockDeploymentRepository{}
		store.On("LatestDeployment", ctx, "localhost", "Ballot").Return(nil, domain.ErrNotFound)

		_, err := usecase.NewShowDeployment(cfg, store, usecase.NopProgress{}).Run(ctx, usecase.ShowDeploymentParams{Ref: "Ballot"})
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}
