package cli

import (
	"github.com/dappctl/dappctl/internal/cli/render"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/spf13/cobra"
)

// NewListCmd creates the list command
func NewListCmd() *cobra.Command {
	var contractName string

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List recorded deployments",
		Long: `List deployments recorded in .dappctl/deployments.json.

Deployments from every network are shown unless --network is given.
Deployments to the in-process hardhat network are never recorded.`,
		Example: `  # List all deployments
  dappctl list

  # List Healthcare deployments on localhost as YAML
  dappctl list --network localhost --contract Healthcare -o yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			params := usecase.ListDeploymentsParams{ContractName: contractName}
			if cmd.Flags().Changed("network") {
				params.Network = app.Config.Network.Name
			}

			result, err := app.ListDeployments.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			format, err := outputFormat(cmd, app)
			if err != nil {
				return err
			}
			return render.NewDeploymentsRenderer(cmd.OutOrStdout(), format).Render(result)
		},
	}

	cmd.Flags().StringVar(&contractName, "contract", "", "Filter by contract name or alias")
	addOutputFlag(cmd)

	return cmd
}
