package cli

import (
	"fmt"

	"github.com/dappctl/dappctl/internal/cli/render"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewCheckCmd creates the conformance check command
func NewCheckCmd() *cobra.Command {
	var (
		scenarios   []string
		interactive bool
		list        bool
		compile     bool
	)

	cmd := &cobra.Command{
		Use:   "check [contract]",
		Short: "Run the Healthcare conformance scenarios",
		Long: `Deploy a fresh Healthcare contract for every scenario and check that it
authorizes doctors, stores and updates patient records, and reports doctors by
specialization as expected.

The first account is the admin, the next two act as doctors and the fourth as
the patient. The command exits non-zero when any scenario fails.`,
		Example: `  # Run every scenario on the in-process chain
  dappctl check

  # Run two scenarios against a local node
  dappctl check --run authorize-doctor,doctor-count --network localhost

  # Pick scenarios interactively
  dappctl check --select`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list {
				for _, s := range usecase.HealthcareScenarios() {
					fmt.Fprintf(cmd.OutOrStdout(), "%-28s %s\n", color.New(color.FgCyan).Sprint(s.Name), s.Description)
				}
				return nil
			}

			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			if interactive {
				if app.Config.NonInteractive {
					return fmt.Errorf("--select cannot be used with --non-interactive")
				}
				scenarios, err = SelectScenarios(usecase.HealthcareScenarios(), "Select scenarios to run")
				if err != nil {
					return err
				}
			}

			params := usecase.CheckHealthcareParams{
				Scenarios: scenarios,
				Compile:   compile,
			}
			if len(args) > 0 {
				params.Contract = args[0]
			}

			report, err := app.CheckHealthcare.Run(cmd.Context(), params)
			if err != nil {
				return err
			}

			stopProgress(app)
			format, err := outputFormat(cmd, app)
			if err != nil {
				return err
			}
			if err := render.NewConformanceRenderer(cmd.OutOrStdout(), format).Render(report); err != nil {
				return err
			}

			if failed := report.Failed(); failed > 0 {
				return fmt.Errorf("%d of %d scenarios failed", failed, len(report.Results))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&scenarios, "run", nil, "Scenarios to run (default: all)")
	cmd.Flags().BoolVar(&interactive, "select", false, "Choose scenarios interactively")
	cmd.Flags().BoolVar(&list, "list", false, "List scenarios and exit")
	cmd.Flags().BoolVar(&compile, "compile", false, "Compile contracts before running")
	addOutputFlag(cmd)

	return cmd
}
