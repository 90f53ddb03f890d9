package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/dappctl/dappctl/internal/adapters/progress"
	"github.com/dappctl/dappctl/internal/app"
	"github.com/dappctl/dappctl/internal/cli/render"
	"github.com/dappctl/dappctl/internal/config"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/spf13/cobra"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var cancel context.CancelFunc

	rootCmd := &cobra.Command{
		Use:   "dappctl",
		Short: "Deploy contracts and wire them into a dApp frontend",
		Long: `dappctl deploys compiled contracts to an EVM network, writes the address
and artifact files the web frontend imports, and checks a deployed Healthcare
contract against its expected behaviour.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if skipsApp(cmd) {
				return nil
			}

			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				return err
			}

			v := config.SetupViper(projectRoot, cmd)

			appInstance, err := app.InitApp(v, newProgressSink(cmd))
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}

			ctx := context.WithValue(cmd.Context(), appKey, appInstance)
			if appInstance.Config.Timeout > 0 {
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
			}
			cmd.SetContext(ctx)

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if cancel != nil {
				cancel()
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringP("network", "n", "", "Network to use (hardhat, localhost, or a [networks] entry)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().Bool("json", false, "Output results as JSON")
	rootCmd.PersistentFlags().Duration("timeout", 0, "Abort the command after this long (default 5m)")
	rootCmd.PersistentFlags().String("artifacts", "", "Directory holding compiled artifacts")
	rootCmd.PersistentFlags().String("frontend-dir", "", "Directory the frontend files are written to")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Main Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "management",
		Title: "Management Commands",
	})

	for _, c := range []*cobra.Command{NewDeployCmd(), NewCheckCmd(), NewHealthcareCmd()} {
		c.GroupID = "main"
		rootCmd.AddCommand(c)
	}
	for _, c := range []*cobra.Command{NewListCmd(), NewShowCmd(), NewNetworksCmd(), NewAccountsCmd()} {
		c.GroupID = "management"
		rootCmd.AddCommand(c)
	}
	rootCmd.AddCommand(NewVersionCmd())
	stopProgressAfterRun(rootCmd)

	return rootCmd
}

// stopProgressAfterRun wraps every RunE in the tree so a running spinner is
// halted before cobra hands the result or error back to main.
func stopProgressAfterRun(cmd *cobra.Command) {
	for _, c := range cmd.Commands() {
		stopProgressAfterRun(c)
	}
	if cmd.RunE == nil {
		return
	}
	run := cmd.RunE
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if app, appErr := getApp(cmd); appErr == nil {
			stopProgress(app)
		}
		return err
	}
}

// stopProgress halts the spinner, if the app reports through one
func stopProgress(app *app.App) {
	if s, ok := app.Progress.(interface{ Stop() }); ok {
		s.Stop()
	}
}

func skipsApp(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "help", "completion", "__complete":
		return true
	case "check":
		list, _ := cmd.Flags().GetBool("list")
		return list
	}
	return cmd.Parent() != nil && cmd.Parent().Name() == "completion"
}

// newProgressSink picks a spinner for terminals and plain lines otherwise.
// JSON output keeps stdout for the result alone.
func newProgressSink(cmd *cobra.Command) usecase.ProgressSink {
	jsonOut, _ := cmd.Flags().GetBool("json")
	nonInteractive, _ := cmd.Flags().GetBool("non-interactive")

	switch {
	case jsonOut:
		return progress.NewPlainSink(os.Stderr)
	case nonInteractive:
		return progress.NewPlainSink(cmd.OutOrStdout())
	default:
		return progress.NewSpinnerProgressReporter()
	}
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}

// outputFormat resolves --output, falling back to --json
func outputFormat(cmd *cobra.Command, app *app.App) (render.Format, error) {
	if f := cmd.Flags().Lookup("output"); f != nil && f.Changed {
		return render.ParseFormat(f.Value.String())
	}
	if app.Config.JSON {
		return render.FormatJSON, nil
	}
	return render.FormatTable, nil
}

// addOutputFlag registers --output on commands that print structured results
func addOutputFlag(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "table", "Output format (table, json, yaml)")
}
