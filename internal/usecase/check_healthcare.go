package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dappctl/dappctl/internal/domain"
	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/samber/lo"
)

// DefaultHealthcareContract is the artifact the conformance suite deploys
const DefaultHealthcareContract = "Healthcare"

// healthcareSigners is how many accounts the scenarios need
const healthcareSigners = 4

// Fixture values shared by the scenarios
const (
	doctor1Name           = "Dr. Smith"
	doctor1Specialization = "Cardiology"
	doctor2Name           = "Dr. Johnson"
	doctor2Specialization = "Neurology"
	patientName           = "Alice"
	patientAge            = 30
	patientHistory        = "No known allergies"
	updatedHistory        = "Diabetic"
)

// Scenario is one conformance check against a fresh contract instance
type Scenario struct {
	Name        string
	Description string
	run         func(ctx context.Context, env *scenarioEnv) error
}

// scenarioEnv holds the instance under test and the four signers
type scenarioEnv struct {
	contract HealthcareContract
	admin    common.Address
	doctor1  common.Address
	doctor2  common.Address
	patient1 common.Address
}

// HealthcareScenarios returns the conformance scenarios in execution order
func HealthcareScenarios() []Scenario {
	return []Scenario{
		{
			Name:        "authorize-doctor",
			Description: "Should authorize a doctor",
			run:         scenarioAuthorizeDoctor,
		},
		{
			Name:        "add-patient-record",
			Description: "Should allow authorized doctor to add a patient record",
			run:         scenarioAddPatientRecord,
		},
		{
			Name:        "update-patient-record",
			Description: "Should allow authorized doctor to update a patient record",
			run:         scenarioUpdatePatientRecord,
		},
		{
			Name:        "doctor-count",
			Description: "Should count authorized doctors",
			run:         scenarioDoctorCount,
		},
		{
			Name:        "doctors-by-specialization",
			Description: "Should return doctors by specialization",
			run:         scenarioDoctorsBySpecialization,
		},
	}
}

// CheckHealthcareParams contains parameters for the conformance suite
type CheckHealthcareParams struct {
	// Contract is the artifact to deploy; empty means Healthcare
	Contract string
	// Scenarios restricts the run to the named scenarios; empty runs all
	Scenarios []string
	Compile   bool
}

// CheckHealthcare runs the Healthcare conformance scenarios
type CheckHealthcare struct {
	config    *config.RuntimeConfig
	compiler  Compiler
	resolve   *ResolveContract
	connector ChainConnector
	sink      ProgressSink
}

// NewCheckHealthcare creates a new CheckHealthcare use case
func NewCheckHealthcare(
	cfg *config.RuntimeConfig,
	compiler Compiler,
	resolve *ResolveContract,
	connector ChainConnector,
	sink ProgressSink,
) *CheckHealthcare {
	return &CheckHealthcare{
		config:    cfg,
		compiler:  compiler,
		resolve:   resolve,
		connector: connector,
		sink:      sink,
	}
}

// Run executes the selected scenarios and reports every outcome.
// Scenario failures are part of the report, not the returned error.
func (uc *CheckHealthcare) Run(ctx context.Context, params CheckHealthcareParams) (*models.ConformanceReport, error) {
	scenarios, err := selectScenarios(params.Scenarios)
	if err != nil {
		return nil, err
	}

	if params.Compile {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "compiling", Message: "Compiling contracts", Spinner: true})
		if err := uc.compiler.Compile(ctx); err != nil {
			return nil, fmt.Errorf("failed to compile contracts: %w", err)
		}
	}

	artifact, err := uc.resolve.Run(ctx, lo.Ternary(params.Contract != "", params.Contract, DefaultHealthcareContract))
	if err != nil {
		return nil, err
	}

	chain, err := uc.connector.Connect(ctx, uc.config.Network)
	if err != nil {
		return nil, err
	}
	defer chain.Close()

	accounts := chain.Accounts()
	if len(accounts) < healthcareSigners {
		return nil, fmt.Errorf("%w: conformance needs %d accounts, network %s has %d",
			domain.ErrNoSigner, healthcareSigners, uc.config.Network.Name, len(accounts))
	}

	report := &models.ConformanceReport{
		Contract: artifact.FullyQualifiedName(),
		Network:  uc.config.Network.Name,
		ChainID:  chain.ChainID(),
	}

	for i, scenario := range scenarios {
		uc.sink.OnProgress(ctx, ProgressEvent{
			Stage:   "scenario",
			Current: i + 1,
			Total:   len(scenarios),
			Message: fmt.Sprintf("[%d/%d] %s", i+1, len(scenarios), scenario.Description),
			Spinner: true,
		})

		result := uc.runScenario(ctx, chain, artifact, accounts, scenario)
		report.Results = append(report.Results, result)

		if ctx.Err() != nil {
			return report, ctx.Err()
		}
	}
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete", Current: len(scenarios), Total: len(scenarios), Message: "Done"})

	return report, nil
}

func (uc *CheckHealthcare) runScenario(
	ctx context.Context,
	chain Chain,
	artifact *models.Artifact,
	accounts []common.Address,
	scenario Scenario,
) models.ScenarioResult {
	start := time.Now()
	result := models.ScenarioResult{
		Name:        scenario.Name,
		Description: scenario.Description,
	}

	err := func() error {
		env := &scenarioEnv{
			admin:    accounts[0],
			doctor1:  accounts[1],
			doctor2:  accounts[2],
			patient1: accounts[3],
		}

		receipt, err := chain.Deploy(ctx, env.admin, artifact)
		if err != nil {
			return fmt.Errorf("deploy: %w", err)
		}
		result.Instance = receipt.Address

		if env.contract, err = chain.Healthcare(receipt.Address); err != nil {
			return err
		}
		return scenario.run(ctx, env)
	}()

	result.Duration = time.Since(start)
	result.Passed = err == nil
	if err != nil {
		result.Failure = err.Error()
	}
	return result
}

// selectScenarios filters by name, keeping execution order
func selectScenarios(names []string) ([]Scenario, error) {
	all := HealthcareScenarios()
	if len(names) == 0 {
		return all, nil
	}

	known := lo.Map(all, func(s Scenario, _ int) string { return s.Name })
	if unknown, _ := lo.Difference(names, known); len(unknown) > 0 {
		return nil, fmt.Errorf("unknown scenario(s) %s (available: %s)",
			strings.Join(unknown, ", "), strings.Join(known, ", "))
	}

	return lo.Filter(all, func(s Scenario, _ int) bool {
		return lo.Contains(names, s.Name)
	}), nil
}

func scenarioAuthorizeDoctor(ctx context.Context, env *scenarioEnv) error {
	if err := env.authorizeDoctor1(ctx); err != nil {
		return err
	}

	authorized, err := env.contract.IsAuthorizedDoctor(ctx, env.doctor1)
	if err != nil {
		return fmt.Errorf("authorizedDoctor: %w", err)
	}
	if err := expectEqual("authorizedDoctor(doctor1)", authorized, true); err != nil {
		return err
	}

	doctor, err := env.contract.Doctor(ctx, env.doctor1)
	if err != nil {
		return fmt.Errorf("doctors: %w", err)
	}
	if err := expectEqual("doctor name", doctor.Name, doctor1Name); err != nil {
		return err
	}
	return expectEqual("doctor specialization", doctor.Specialization, doctor1Specialization)
}

func scenarioAddPatientRecord(ctx context.Context, env *scenarioEnv) error {
	if err := env.authorizeDoctor1(ctx); err != nil {
		return err
	}
	if err := env.addPatient1(ctx); err != nil {
		return err
	}

	record, err := env.contract.PatientRecord(ctx, env.patient1)
	if err != nil {
		return fmt.Errorf("getPatientRecord: %w", err)
	}
	return expectRecord(record, patientName, patientAge, patientHistory)
}

func scenarioUpdatePatientRecord(ctx context.Context, env *scenarioEnv) error {
	if err := env.authorizeDoctor1(ctx); err != nil {
		return err
	}
	if err := env.addPatient1(ctx); err != nil {
		return err
	}
	if _, err := env.contract.UpdatePatientRecord(ctx, env.doctor1, env.patient1, patientName, patientAge, updatedHistory); err != nil {
		return fmt.Errorf("updatePatientRecord: %w", err)
	}

	record, err := env.contract.PatientRecord(ctx, env.patient1)
	if err != nil {
		return fmt.Errorf("getPatientRecord: %w", err)
	}
	return expectRecord(record, patientName, patientAge, updatedHistory)
}

func scenarioDoctorCount(ctx context.Context, env *scenarioEnv) error {
	if err := env.authorizeBothDoctors(ctx); err != nil {
		return err
	}

	count, err := env.contract.DoctorCount(ctx)
	if err != nil {
		return fmt.Errorf("doctorCount: %w", err)
	}
	return expectEqual("doctorCount()", count, uint64(2))
}

func scenarioDoctorsBySpecialization(ctx context.Context, env *scenarioEnv) error {
	if err := env.authorizeBothDoctors(ctx); err != nil {
		return err
	}

	checks := []struct {
		specialization string
		doctor         common.Address
	}{
		{doctor1Specialization, env.doctor1},
		{doctor2Specialization, env.doctor2},
	}
	for _, check := range checks {
		doctors, err := env.contract.DoctorsBySpecialization(ctx, check.specialization)
		if err != nil {
			return fmt.Errorf("getDoctorsBySpecialization: %w", err)
		}
		if !lo.Contains(doctors, check.doctor) {
			return fmt.Errorf("getDoctorsBySpecialization(%q): expected to include %s, got %v",
				check.specialization, check.doctor.Hex(), doctors)
		}
	}
	return nil
}

func (env *scenarioEnv) authorizeDoctor1(ctx context.Context) error {
	if _, err := env.contract.AuthorizeDoctor(ctx, env.admin, env.doctor1, doctor1Name, doctor1Specialization); err != nil {
		return fmt.Errorf("authorizeDoctor: %w", err)
	}
	return nil
}

func (env *scenarioEnv) authorizeBothDoctors(ctx context.Context) error {
	if err := env.authorizeDoctor1(ctx); err != nil {
		return err
	}
	if _, err := env.contract.AuthorizeDoctor(ctx, env.admin, env.doctor2, doctor2Name, doctor2Specialization); err != nil {
		return fmt.Errorf("authorizeDoctor: %w", err)
	}
	return nil
}

func (env *scenarioEnv) addPatient1(ctx context.Context) error {
	if _, err := env.contract.AddPatientRecord(ctx, env.doctor1, env.patient1, patientName, patientAge, patientHistory); err != nil {
		return fmt.Errorf("addPatientRecord: %w", err)
	}
	return nil
}

func expectRecord(record *models.PatientRecord, name string, age uint64, history string) error {
	if err := expectEqual("patient name", record.Name, name); err != nil {
		return err
	}
	if err := expectEqual("patient age", record.Age, age); err != nil {
		return err
	}
	return expectEqual("medical history", record.MedicalHistory, history)
}

func expectEqual[T comparable](what string, got, want T) error {
	if got != want {
		return fmt.Errorf("%s: expected %v, got %v", what, want, got)
	}
	return nil
}
