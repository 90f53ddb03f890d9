package render

import (
	"fmt"
	"io"

	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/ethereum/go-ethereum/common"
	"github.com/fatih/color"
)

// HealthcareRenderer renders results of Healthcare contract calls
type HealthcareRenderer struct {
	out    io.Writer
	format Format
}

// NewHealthcareRenderer creates a new healthcare renderer
func NewHealthcareRenderer(out io.Writer, format Format) *HealthcareRenderer {
	return &HealthcareRenderer{out: out, format: format}
}

// Tx prints a mined transaction
func (r *HealthcareRenderer) Tx(action string, tx *models.TxResult) error {
	if ok, err := WriteStructured(r.out, r.format, tx); ok {
		return err
	}
	fmt.Fprintln(r.out, FormatSuccess(action))
	fmt.Fprintf(r.out, "  Transaction: %s (block %d, gas %d)\n", tx.Hash.Hex(), tx.BlockNumber, tx.GasUsed)
	return nil
}

// Patient prints a patient record
func (r *HealthcareRenderer) Patient(record *models.PatientRecord) error {
	if ok, err := WriteStructured(r.out, r.format, record); ok {
		return err
	}
	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "Patient %s\n", record.Patient.Hex())
	fmt.Fprintf(r.out, "  Name: %s\n", record.Name)
	fmt.Fprintf(r.out, "  Age: %d\n", record.Age)
	fmt.Fprintf(r.out, "  Medical History: %s\n", record.MedicalHistory)
	return nil
}

// Doctor prints a doctor record
func (r *HealthcareRenderer) Doctor(doctor *models.Doctor) error {
	if ok, err := WriteStructured(r.out, r.format, doctor); ok {
		return err
	}
	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "Doctor %s\n", doctor.Address.Hex())
	fmt.Fprintf(r.out, "  Name: %s\n", doctor.Name)
	fmt.Fprintf(r.out, "  Specialization: %s\n", doctor.Specialization)
	status := color.New(color.FgGreen).Sprint("authorized")
	if !doctor.Authorized {
		status = color.New(color.FgRed).Sprint("not authorized")
	}
	fmt.Fprintf(r.out, "  Status: %s\n", status)
	return nil
}

// DoctorCount prints the number of authorized doctors
func (r *HealthcareRenderer) DoctorCount(count uint64) error {
	if ok, err := WriteStructured(r.out, r.format, map[string]uint64{"doctorCount": count}); ok {
		return err
	}
	fmt.Fprintf(r.out, "Authorized doctors: %d\n", count)
	return nil
}

// Doctors prints the addresses registered under a specialization
func (r *HealthcareRenderer) Doctors(specialization string, doctors []common.Address) error {
	if doctors == nil {
		doctors = []common.Address{}
	}
	if ok, err := WriteStructured(r.out, r.format, doctors); ok {
		return err
	}
	if len(doctors) == 0 {
		fmt.Fprintf(r.out, "No doctors with specialization %q\n", specialization)
		return nil
	}
	fmt.Fprintf(r.out, "%s doctors:\n", specialization)
	for _, doctor := range doctors {
		fmt.Fprintf(r.out, "  %s\n", doctor.Hex())
	}
	return nil
}
