package cli

import (
	"fmt"

	"github.com/dappctl/dappctl/internal/app"
	"github.com/dappctl/dappctl/internal/cli/render"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/spf13/cobra"
)

// NewHealthcareCmd creates the healthcare command group
func NewHealthcareCmd() *cobra.Command {
	var target usecase.HealthcareTarget

	cmd := &cobra.Command{
		Use:     "healthcare",
		Aliases: []string{"hc"},
		Short:   "Call a deployed Healthcare contract",
		Long: `Send transactions to and read from a deployed Healthcare contract.

The contract address defaults to the latest recorded Healthcare deployment on
the current network. Transactions are sent from the first account unless
--from is given; only the admin may authorize doctors and only authorized
doctors may write patient records.`,
	}

	cmd.PersistentFlags().StringVar(&target.Address, "address", "", "Contract address (default: latest recorded deployment)")
	cmd.PersistentFlags().StringVar(&target.From, "from", "", "Sender address or account index (default: first account)")
	cmd.PersistentFlags().StringP("output", "o", "table", "Output format (table, json, yaml)")

	cmd.AddCommand(
		newAuthorizeDoctorCmd(&target),
		newPatientWriteCmd(&target, "add-patient", "Add a patient record", false),
		newPatientWriteCmd(&target, "update-patient", "Update a patient record", true),
		newPatientCmd(&target),
		newDoctorCmd(&target),
		newDoctorCountCmd(&target),
		newDoctorsCmd(&target),
	)

	return cmd
}

// withHealthcare runs fn with the app and a renderer for the command's output format
func withHealthcare(cmd *cobra.Command, fn func(*app.App, *render.HealthcareRenderer) error) error {
	app, err := getApp(cmd)
	if err != nil {
		return err
	}
	format, err := outputFormat(cmd, app)
	if err != nil {
		return err
	}
	return fn(app, render.NewHealthcareRenderer(cmd.OutOrStdout(), format))
}

func newAuthorizeDoctorCmd(target *usecase.HealthcareTarget) *cobra.Command {
	var name, specialization string

	cmd := &cobra.Command{
		Use:     "authorize-doctor <doctor>",
		Short:   "Authorize a doctor (admin only)",
		Example: `  dappctl healthcare authorize-doctor 0x7099...79C8 --name "Dr. Smith" --specialization Cardiology`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHealthcare(cmd, func(app *app.App, r *render.HealthcareRenderer) error {
				tx, err := app.Healthcare.AuthorizeDoctor(cmd.Context(), usecase.DoctorParams{
					HealthcareTarget: *target,
					Doctor:           args[0],
					Name:             name,
					Specialization:   specialization,
				})
				if err != nil {
					return err
				}
				return r.Tx(fmt.Sprintf("Authorized %s", name), tx)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Doctor's name")
	cmd.Flags().StringVar(&specialization, "specialization", "", "Doctor's specialization")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("specialization")
	return cmd
}

func newPatientWriteCmd(target *usecase.HealthcareTarget, use, short string, update bool) *cobra.Command {
	var (
		name    string
		age     uint64
		history string
	)

	cmd := &cobra.Command{
		Use:   use + " <patient>",
		Short: short + " (authorized doctors only)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHealthcare(cmd, func(app *app.App, r *render.HealthcareRenderer) error {
				params := usecase.PatientParams{
					HealthcareTarget: *target,
					Patient:          args[0],
					Name:             name,
					Age:              age,
					MedicalHistory:   history,
				}

				write := app.Healthcare.AddPatient
				action := "Added record for %s"
				if update {
					write = app.Healthcare.UpdatePatient
					action = "Updated record for %s"
				}

				tx, err := write(cmd.Context(), params)
				if err != nil {
					return err
				}
				return r.Tx(fmt.Sprintf(action, name), tx)
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Patient's name")
	cmd.Flags().Uint64Var(&age, "age", 0, "Patient's age")
	cmd.Flags().StringVar(&history, "history", "", "Medical history")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("age")
	return cmd
}

func newPatientCmd(target *usecase.HealthcareTarget) *cobra.Command {
	return &cobra.Command{
		Use:   "patient <patient>",
		Short: "Read a patient record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHealthcare(cmd, func(app *app.App, r *render.HealthcareRenderer) error {
				record, err := app.Healthcare.Patient(cmd.Context(), usecase.PatientParams{
					HealthcareTarget: *target,
					Patient:          args[0],
				})
				if err != nil {
					return err
				}
				return r.Patient(record)
			})
		},
	}
}

func newDoctorCmd(target *usecase.HealthcareTarget) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor <doctor>",
		Short: "Read a doctor record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHealthcare(cmd, func(app *app.App, r *render.HealthcareRenderer) error {
				doctor, err := app.Healthcare.Doctor(cmd.Context(), usecase.DoctorParams{
					HealthcareTarget: *target,
					Doctor:           args[0],
				})
				if err != nil {
					return err
				}
				return r.Doctor(doctor)
			})
		},
	}
}

func newDoctorCountCmd(target *usecase.HealthcareTarget) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor-count",
		Short: "Print the number of authorized doctors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHealthcare(cmd, func(app *app.App, r *render.HealthcareRenderer) error {
				count, err := app.Healthcare.DoctorCount(cmd.Context(), *target)
				if err != nil {
					return err
				}
				return r.DoctorCount(count)
			})
		},
	}
}

func newDoctorsCmd(target *usecase.HealthcareTarget) *cobra.Command {
	return &cobra.Command{
		Use:   "doctors <specialization>",
		Short: "List doctors with a specialization",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withHealthcare(cmd, func(app *app.App, r *render.HealthcareRenderer) error {
				doctors, err := app.Healthcare.DoctorsBySpecialization(cmd.Context(), *target, args[0])
				if err != nil {
					return err
				}
				return r.Doctors(args[0], doctors)
			})
		},
	}
}
