//go:build wireinject
// +build wireinject

package app

import (
	"github.com/dappctl/dappctl/internal/adapters"
	"github.com/dappctl/dappctl/internal/config"
	"github.com/dappctl/dappctl/internal/logging"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/google/wire"
	"github.com/spf13/viper"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper, sink usecase.ProgressSink) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewResolveContract,
		usecase.NewDeployContract,
		usecase.NewCheckHealthcare,
		usecase.NewHealthcareClient,
		usecase.NewListDeployments,
		usecase.NewShowDeployment,
		usecase.NewListNetworks,
		usecase.NewListAccounts,

		// App
		NewApp,
	)
	return nil, nil
}
