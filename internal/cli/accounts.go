package cli

import (
	"github.com/dappctl/dappctl/internal/cli/render"
	"github.com/spf13/cobra"
)

// NewAccountsCmd creates the accounts command
func NewAccountsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accounts",
		Short: "List the signers of the current network",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.ListAccounts.Run(cmd.Context())
			if err != nil {
				return err
			}

			format, err := outputFormat(cmd, app)
			if err != nil {
				return err
			}
			return render.NewAccountsRenderer(cmd.OutOrStdout(), format).Render(result)
		},
	}

	addOutputFlag(cmd)
	return cmd
}
