package blockchain

import (
	"context"
	"fmt"
	"math/big"

	"github.com/dappctl/dappctl/internal/domain/bindings"
	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/ethereum/go-ethereum/accounts/abi/bind/v2"
	"github.com/ethereum/go-ethereum/common"
)

// HealthcareGateway calls a deployed Healthcare contract through its binding
type HealthcareGateway struct {
	session  *Session
	binding  *bindings.Healthcare
	contract *bind.BoundContract
	address  common.Address
}

// Address returns the contract address
func (g *HealthcareGateway) Address() common.Address { return g.address }

func (g *HealthcareGateway) AuthorizeDoctor(ctx context.Context, from, doctor common.Address, name, specialization string) (*models.TxResult, error) {
	data, err := g.binding.TryPackAuthorizeDoctor(doctor, name, specialization)
	if err != nil {
		return nil, err
	}
	return g.session.send(ctx, g.contract, from, data)
}

func (g *HealthcareGateway) AddPatientRecord(ctx context.Context, from, patient common.Address, name string, age uint64, medicalHistory string) (*models.TxResult, error) {
	data, err := g.binding.TryPackAddPatientRecord(patient, name, new(big.Int).SetUint64(age), medicalHistory)
	if err != nil {
		return nil, err
	}
	return g.session.send(ctx, g.contract, from, data)
}

func (g *HealthcareGateway) UpdatePatientRecord(ctx context.Context, from, patient common.Address, name string, age uint64, medicalHistory string) (*models.TxResult, error) {
	data, err := g.binding.TryPackUpdatePatientRecord(patient, name, new(big.Int).SetUint64(age), medicalHistory)
	if err != nil {
		return nil, err
	}
	return g.session.send(ctx, g.contract, from, data)
}

func (g *HealthcareGateway) Admin(ctx context.Context) (common.Address, error) {
	return bind.Call(g.contract, g.callOpts(ctx), g.binding.PackAdmin(), g.binding.UnpackAdmin)
}

func (g *HealthcareGateway) IsAuthorizedDoctor(ctx context.Context, doctor common.Address) (bool, error) {
	return bind.Call(g.contract, g.callOpts(ctx), g.binding.PackAuthorizedDoctor(doctor), g.binding.UnpackAuthorizedDoctor)
}

func (g *HealthcareGateway) Doctor(ctx context.Context, doctor common.Address) (*models.Doctor, error) {
	out, err := bind.Call(g.contract, g.callOpts(ctx), g.binding.PackDoctors(doctor), g.binding.UnpackDoctors)
	if err != nil {
		return nil, err
	}
	return out.ToModel(doctor, false), nil
}

func (g *HealthcareGateway) PatientRecord(ctx context.Context, patient common.Address) (*models.PatientRecord, error) {
	out, err := bind.Call(g.contract, g.callOpts(ctx), g.binding.PackGetPatientRecord(patient), g.binding.UnpackGetPatientRecord)
	if err != nil {
		return nil, err
	}
	return out.ToModel(patient)
}

func (g *HealthcareGateway) DoctorCount(ctx context.Context) (uint64, error) {
	count, err := bind.Call(g.contract, g.callOpts(ctx), g.binding.PackDoctorCount(), g.binding.UnpackDoctorCount)
	if err != nil {
		return 0, err
	}
	if !count.IsUint64() {
		return 0, fmt.Errorf("doctor count %s out of range", count)
	}
	return count.Uint64(), nil
}

func (g *HealthcareGateway) DoctorsBySpecialization(ctx context.Context, specialization string) ([]common.Address, error) {
	return bind.Call(g.contract, g.callOpts(ctx),
		g.binding.PackGetDoctorsBySpecialization(specialization), g.binding.UnpackGetDoctorsBySpecialization)
}

func (g *HealthcareGateway) callOpts(ctx context.Context) *bind.CallOpts {
	return &bind.CallOpts{Context: ctx}
}

// Ensure the adapter implements the interface
var _ usecase.HealthcareContract = (*HealthcareGateway)(nil)
