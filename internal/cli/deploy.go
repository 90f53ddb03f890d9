package cli

import (
	"github.com/dappctl/dappctl/internal/cli/render"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/spf13/cobra"
)

// NewDeployCmd creates the deploy command
func NewDeployCmd() *cobra.Command {
	var (
		contract string
		alias    string
		from     string
		compile  bool
	)

	cmd := &cobra.Command{
		Use:   "deploy [contract]",
		Short: "Deploy a contract and write its frontend files",
		Long: `Deploy a compiled contract with the network's first account (or --from) and
write contract-address.json plus the contract's artifact into the frontend
directory.

The contract defaults to [deploy].contract in dappctl.toml. Use path:Name when
the same contract name exists in several sources.`,
		Example: `  # Deploy the default contract to the in-process chain
  dappctl deploy

  # Deploy to a running node
  dappctl deploy voting --network localhost

  # Rebuild first and publish under a different name
  dappctl deploy contracts/Voting.sol:voting --compile --alias Ballot`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				contract = args[0]
			}

			result, err := app.DeployContract.Run(cmd.Context(), usecase.DeployContractParams{
				Contract: contract,
				Alias:    alias,
				From:     from,
				Compile:  compile,
			})
			if err != nil {
				return err
			}

			stopProgress(app)
			format, err := outputFormat(cmd, app)
			if err != nil {
				return err
			}
			return render.NewDeployRenderer(cmd.OutOrStdout(), format).Render(result)
		},
	}

	cmd.Flags().StringVar(&contract, "contract", "", "Contract name or path:Name (default from dappctl.toml)")
	cmd.Flags().StringVar(&alias, "alias", "", "Name used in the frontend files (default: capitalized contract name)")
	cmd.Flags().StringVar(&from, "from", "", "Deployer address or account index (default: first account)")
	cmd.Flags().BoolVar(&compile, "compile", false, "Compile contracts before deploying")
	addOutputFlag(cmd)

	return cmd
}
