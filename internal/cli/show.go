package cli

import (
	"fmt"

	"github.com/dappctl/dappctl/internal/cli/render"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/spf13/cobra"
)

// NewShowCmd creates the show command
func NewShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <deployment>",
		Short: "Show a recorded deployment",
		Long: `Show detailed information about a recorded deployment.

You can specify deployments using:
- Contract name or alias on the current network: "Voting"
- Full deployment ID: "localhost/31337/Voting"`,
		Example: `  dappctl show Voting --network localhost
  dappctl show sepolia/11155111/Healthcare`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			deployment, err := app.ShowDeployment.Run(cmd.Context(), usecase.ShowDeploymentParams{Ref: args[0]})
			if err != nil {
				return fmt.Errorf("failed to resolve deployment: %w", err)
			}

			format, err := outputFormat(cmd, app)
			if err != nil {
				return err
			}
			return render.NewDeploymentRenderer(cmd.OutOrStdout(), format).Render(deployment)
		},
	}

	addOutputFlag(cmd)
	return cmd
}
