package models

import (
	"github.com/ethereum/go-ethereum/common"
)

// Doctor is the record stored for an authorized doctor
type Doctor struct {
	Address        common.Address `json:"address"`
	Name           string         `json:"name"`
	Specialization string         `json:"specialization"`
	Authorized     bool           `json:"authorized"`
}

// PatientRecord is the record a doctor keeps for a patient
type PatientRecord struct {
	Patient        common.Address `json:"patient"`
	Name           string         `json:"name"`
	Age            uint64         `json:"age"`
	MedicalHistory string         `json:"medicalHistory"`
}

// TxResult summarizes a mined contract call
type TxResult struct {
	Hash        common.Hash `json:"hash"`
	BlockNumber uint64      `json:"blockNumber"`
	GasUsed     uint64      `json:"gasUsed"`
}
