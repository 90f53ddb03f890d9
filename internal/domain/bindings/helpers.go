package bindings

import (
	"fmt"

	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
)

// ToModel converts the tuple returned by getPatientRecord.
// Ages beyond uint64 are rejected rather than truncated.
func (p HealthcarePatient) ToModel(patient common.Address) (*models.PatientRecord, error) {
	record := &models.PatientRecord{
		Patient:        patient,
		Name:           p.Name,
		MedicalHistory: p.MedicalHistory,
	}
	if p.Age != nil {
		if !p.Age.IsUint64() {
			return nil, fmt.Errorf("patient age %s out of range", p.Age)
		}
		record.Age = p.Age.Uint64()
	}
	return record, nil
}

// ToModel converts the doctors(address) getter output
func (d DoctorsOutput) ToModel(doctor common.Address, authorized bool) *models.Doctor {
	return &models.Doctor{
		Address:        doctor,
		Name:           d.Name,
		Specialization: d.Specialization,
		Authorized:     authorized,
	}
}
