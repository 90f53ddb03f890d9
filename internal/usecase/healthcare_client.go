package usecase

import (
	"context"
	"fmt"

	"github.com/dappctl/dappctl/internal/domain"
	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
)

// HealthcareTarget identifies the deployed contract and the sending account
type HealthcareTarget struct {
	// Address of the contract; empty means the latest registry entry on the network
	Address string
	// From selects the sender among the network's accounts
	From string
}

// DoctorParams identifies a doctor and, when authorizing, their details
type DoctorParams struct {
	HealthcareTarget
	Doctor         string
	Name           string
	Specialization string
}

// PatientParams identifies a patient and, when writing, their record
type PatientParams struct {
	HealthcareTarget
	Patient        string
	Name           string
	Age            uint64
	MedicalHistory string
}

// HealthcareClient exposes the Healthcare contract's call surface
type HealthcareClient struct {
	config    *config.RuntimeConfig
	connector ChainConnector
	registry  DeploymentRepository
	sink      ProgressSink
}

// NewHealthcareClient creates a new HealthcareClient use case
func NewHealthcareClient(
	cfg *config.RuntimeConfig,
	connector ChainConnector,
	registry DeploymentRepository,
	sink ProgressSink,
) *HealthcareClient {
	return &HealthcareClient{
		config:    cfg,
		connector: connector,
		registry:  registry,
		sink:      sink,
	}
}

// AuthorizeDoctor registers a doctor; only the admin may send it
func (uc *HealthcareClient) AuthorizeDoctor(ctx context.Context, params DoctorParams) (*models.TxResult, error) {
	doctor, err := parseAddress("doctor", params.Doctor)
	if err != nil {
		return nil, err
	}

	var result *models.TxResult
	err = uc.withContract(ctx, params.HealthcareTarget, func(contract HealthcareContract, from common.Address) error {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "sending", Message: "Authorizing doctor", Spinner: true})
		result, err = contract.AuthorizeDoctor(ctx, from, doctor, params.Name, params.Specialization)
		return err
	})
	return result, err
}

// AddPatient creates a patient record; only authorized doctors may send it
func (uc *HealthcareClient) AddPatient(ctx context.Context, params PatientParams) (*models.TxResult, error) {
	patient, err := parseAddress("patient", params.Patient)
	if err != nil {
		return nil, err
	}

	var result *models.TxResult
	err = uc.withContract(ctx, params.HealthcareTarget, func(contract HealthcareContract, from common.Address) error {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "sending", Message: "Adding patient record", Spinner: true})
		result, err = contract.AddPatientRecord(ctx, from, patient, params.Name, params.Age, params.MedicalHistory)
		return err
	})
	return result, err
}

// UpdatePatient overwrites a patient record
func (uc *HealthcareClient) UpdatePatient(ctx context.Context, params PatientParams) (*models.TxResult, error) {
	patient, err := parseAddress("patient", params.Patient)
	if err != nil {
		return nil, err
	}

	var result *models.TxResult
	err = uc.withContract(ctx, params.HealthcareTarget, func(contract HealthcareContract, from common.Address) error {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "sending", Message: "Updating patient record", Spinner: true})
		result, err = contract.UpdatePatientRecord(ctx, from, patient, params.Name, params.Age, params.MedicalHistory)
		return err
	})
	return result, err
}

// Patient reads a patient record
func (uc *HealthcareClient) Patient(ctx context.Context, params PatientParams) (*models.PatientRecord, error) {
	patient, err := parseAddress("patient", params.Patient)
	if err != nil {
		return nil, err
	}

	var record *models.PatientRecord
	err = uc.withContract(ctx, params.HealthcareTarget, func(contract HealthcareContract, _ common.Address) error {
		record, err = contract.PatientRecord(ctx, patient)
		return err
	})
	return record, err
}

// Doctor reads a doctor's record and authorization flag
func (uc *HealthcareClient) Doctor(ctx context.Context, params DoctorParams) (*models.Doctor, error) {
	address, err := parseAddress("doctor", params.Doctor)
	if err != nil {
		return nil, err
	}

	var doctor *models.Doctor
	err = uc.withContract(ctx, params.HealthcareTarget, func(contract HealthcareContract, _ common.Address) error {
		if doctor, err = contract.Doctor(ctx, address); err != nil {
			return err
		}
		doctor.Authorized, err = contract.IsAuthorizedDoctor(ctx, address)
		return err
	})
	return doctor, err
}

// DoctorCount reads the number of authorized doctors
func (uc *HealthcareClient) DoctorCount(ctx context.Context, target HealthcareTarget) (uint64, error) {
	var count uint64
	err := uc.withContract(ctx, target, func(contract HealthcareContract, _ common.Address) error {
		var err error
		count, err = contract.DoctorCount(ctx)
		return err
	})
	return count, err
}

// DoctorsBySpecialization lists doctors registered with a specialization
func (uc *HealthcareClient) DoctorsBySpecialization(ctx context.Context, target HealthcareTarget, specialization string) ([]common.Address, error) {
	var doctors []common.Address
	err := uc.withContract(ctx, target, func(contract HealthcareContract, _ common.Address) error {
		var err error
		doctors, err = contract.DoctorsBySpecialization(ctx, specialization)
		return err
	})
	return doctors, err
}

// withContract connects, binds the target contract and picks the sender
func (uc *HealthcareClient) withContract(ctx context.Context, target HealthcareTarget, fn func(HealthcareContract, common.Address) error) error {
	network := uc.config.Network
	if network.IsEphemeral() {
		return fmt.Errorf("network %s is discarded after every command, use --network localhost or a configured network", network.Name)
	}

	address, err := uc.resolveAddress(ctx, target.Address)
	if err != nil {
		return err
	}

	chain, err := uc.connector.Connect(ctx, network)
	if err != nil {
		return err
	}
	defer chain.Close()

	from, err := selectAccount(chain.Accounts(), target.From)
	if err != nil && target.From != "" {
		return err
	}

	contract, err := chain.Healthcare(address)
	if err != nil {
		return err
	}

	defer uc.sink.OnProgress(ctx, ProgressEvent{Stage: "complete"})
	return fn(contract, from)
}

func (uc *HealthcareClient) resolveAddress(ctx context.Context, address string) (common.Address, error) {
	if address != "" {
		return parseAddress("contract", address)
	}

	deployment, err := uc.registry.LatestDeployment(ctx, uc.config.Network.Name, DefaultHealthcareContract)
	if err != nil {
		return common.Address{}, fmt.Errorf("no %s deployment recorded on %s, pass --address: %w",
			DefaultHealthcareContract, uc.config.Network.Name, err)
	}
	return common.HexToAddress(deployment.Address), nil
}

func parseAddress(what, value string) (common.Address, error) {
	if !common.IsHexAddress(value) {
		return common.Address{}, fmt.Errorf("%w: %s %q", domain.ErrInvalidAddress, what, value)
	}
	return common.HexToAddress(value), nil
}
