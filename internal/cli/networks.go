package cli

import (
	"github.com/dappctl/dappctl/internal/cli/render"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/spf13/cobra"
)

// NewNetworksCmd creates the networks command
func NewNetworksCmd() *cobra.Command {
	var probe bool

	cmd := &cobra.Command{
		Use:   "networks",
		Short: "List available networks",
		Long: `List the built-in networks (hardhat, localhost) and every [networks] entry
in dappctl.toml. The current network is marked with *.

With --probe each RPC network is contacted to read its chain ID.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListNetworks.Run(cmd.Context(), usecase.ListNetworksParams{Probe: probe})
			if err != nil {
				return err
			}

			format, err := outputFormat(cmd, app)
			if err != nil {
				return err
			}
			return render.NewNetworksRenderer(cmd.OutOrStdout(), format).Render(result)
		},
	}

	cmd.Flags().BoolVar(&probe, "probe", false, "Connect to each RPC network to read its chain ID")
	addOutputFlag(cmd)

	return cmd
}
