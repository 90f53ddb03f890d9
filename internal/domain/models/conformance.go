package models

import (
	"time"

	"github.com/ethereum/go-ethereum/common"
)

// ScenarioResult is the outcome of one conformance scenario
type ScenarioResult struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description" yaml:"description"`
	Passed      bool           `json:"passed" yaml:"passed"`
	Failure     string         `json:"failure,omitempty" yaml:"failure,omitempty"`
	Instance    common.Address `json:"instance" yaml:"instance"`
	Duration    time.Duration  `json:"duration" yaml:"duration"`
}

// ConformanceReport aggregates scenario results for one contract
type ConformanceReport struct {
	Contract string           `json:"contract" yaml:"contract"`
	Network  string           `json:"network" yaml:"network"`
	ChainID  uint64           `json:"chainId" yaml:"chainId"`
	Results  []ScenarioResult `json:"results" yaml:"results"`
}

// Failed counts failing scenarios
func (r *ConformanceReport) Failed() int {
	n := 0
	for _, res := range r.Results {
		if !res.Passed {
			n++
		}
	}
	return n
}
