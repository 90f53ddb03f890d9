package app

import (
	"log/slog"

	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Progress is the sink every use case reports to
	Progress usecase.ProgressSink

	// Use cases
	DeployContract  *usecase.DeployContract
	CheckHealthcare *usecase.CheckHealthcare
	Healthcare      *usecase.HealthcareClient
	ListDeployments *usecase.ListDeployments
	ShowDeployment  *usecase.ShowDeployment
	ListNetworks    *usecase.ListNetworks
	ListAccounts    *usecase.ListAccounts
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	progress usecase.ProgressSink,
	deployContract *usecase.DeployContract,
	checkHealthcare *usecase.CheckHealthcare,
	healthcare *usecase.HealthcareClient,
	listDeployments *usecase.ListDeployments,
	showDeployment *usecase.ShowDeployment,
	listNetworks *usecase.ListNetworks,
	listAccounts *usecase.ListAccounts,
) (*App, error) {
	return &App{
		Config:          cfg,
		Log:             log,
		Progress:        progress,
		DeployContract:  deployContract,
		CheckHealthcare: checkHealthcare,
		Healthcare:      healthcare,
		ListDeployments: listDeployments,
		ShowDeployment:  showDeployment,
		ListNetworks:    listNetworks,
		ListAccounts:    listAccounts,
	}, nil
}
