package render

import (
	"bytes"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatTable, "table": FormatTable, "JSON": FormatJSON, "yaml": FormatYAML} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseFormat("xml")
	assert.EqualError(t, err, `invalid output format "xml" (valid: table, json, yaml)`)
}

func TestWriteYAMLUsesJSONFieldNames(t *testing.T) {
	var buf bytes.Buffer
	dep := &models.Deployment{ID: "localhost/31337/Voting", ChainID: 31337, Alias: "Voting"}

	require.NoError(t, WriteYAML(&buf, dep))
	assert.Contains(t, buf.String(), "id: localhost/31337/Voting")
	assert.Contains(t, buf.String(), "chainId: 31337")
}

func TestFormatEther(t *testing.T) {
	wei, _ := new(big.Int).SetString("10000000000000000000000", 10)
	assert.Equal(t, "10000.0000", FormatEther(wei))
	assert.Equal(t, "0.5000", FormatEther(big.NewInt(5e17)))
	assert.Equal(t, "0", FormatEther(nil))
}

func TestDeploymentsRenderer(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	result := &usecase.DeploymentListResult{
		Deployments: []*models.Deployment{
			{ID: "localhost/31337/Voting", Network: "localhost", ChainID: 31337, ContractName: "voting", Alias: "Voting",
				Address: "0x5FbDB2315678afecb367f032d93F642f64180aa3", TransactionHash: "0x" + string(bytes.Repeat([]byte("ab"), 32)), CreatedAt: created},
		},
	}

	t.Run("table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewDeploymentsRenderer(&buf, FormatTable).Render(result))
		out := stripAnsiCodes(buf.String())
		assert.Contains(t, out, "LOCALHOST")
		assert.Contains(t, out, "31337")
		assert.Contains(t, out, "Voting (voting)")
		assert.Contains(t, out, "0x5FbDB2315678afecb367f032d93F642f64180aa3")
		assert.Contains(t, out, "2026-03-01 12:00:00")
		assert.Contains(t, out, "Total deployments: 1")
	})

	t.Run("empty", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewDeploymentsRenderer(&buf, FormatTable).Render(&usecase.DeploymentListResult{}))
		assert.Equal(t, "No deployments found\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, NewDeploymentsRenderer(&buf, FormatJSON).Render(result))
		assert.Contains(t, buf.String(), `"id": "localhost/31337/Voting"`)
	})
}

func TestNetworksRendererJSONIncludesErrors(t *testing.T) {
	var buf bytes.Buffer
	result := &usecase.ListNetworksResult{
		Current: "hardhat",
		Networks: []usecase.NetworkStatus{
			{Name: "hardhat", ChainID: 31337, Local: true},
			{Name: "sepolia", Error: errors.New("no RPC URL")},
		},
	}

	require.NoError(t, NewNetworksRenderer(&buf, FormatJSON).Render(result))
	assert.Contains(t, buf.String(), `"current": true`)
	assert.Contains(t, buf.String(), `"error": "no RPC URL"`)
}

func TestConformanceRenderer(t *testing.T) {
	var buf bytes.Buffer
	report := &models.ConformanceReport{
		Contract: "contracts/Healthcare.sol:Healthcare",
		Network:  "hardhat",
		ChainID:  31337,
		Results: []models.ScenarioResult{
			{Name: "authorize-doctor", Description: "Should authorize a doctor", Passed: true,
				Instance: common.HexToAddress("0x5FbDB2315678afecb367f032d93F642f64180aa3"), Duration: 12 * time.Millisecond},
			{Name: "doctor-count", Description: "Should count authorized doctors", Failure: "doctor count: expected 2, got 1",
				Instance: common.HexToAddress("0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512"), Duration: 30 * time.Millisecond},
			{Name: "patient-record", Description: "Should add a patient record", Failure: "deploy: connection refused"},
		},
	}

	require.NoError(t, NewConformanceRenderer(&buf, FormatTable).Render(report))
	out := stripAnsiCodes(buf.String())
	assert.Contains(t, out, "✓ Should authorize a doctor")
	assert.Contains(t, out, "✗ Should count authorized doctors")
	assert.Contains(t, out, "✓ Should authorize a doctor (12ms)")
	assert.Contains(t, out, "instance 0x5FbDB2315678afecb367f032d93F642f64180aa3")
	assert.Contains(t, out, "✗ Should count authorized doctors (30ms)")
	assert.Contains(t, out, "instance 0xe7f1725E7734CE288F8367e1Bb143E90bb3F0512")
	assert.Contains(t, out, "doctor count: expected 2, got 1")
	assert.Contains(t, out, "instance -")
	assert.Contains(t, out, "1 passing, 2 failing")
}

func TestHealthcareRendererDoctorsEmptyJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewHealthcareRenderer(&buf, FormatJSON).Doctors("Cardiology", nil))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, NewHealthcareRenderer(&buf, FormatTable).Doctors("Cardiology",
		[]common.Address{common.HexToAddress("0x70997970C51812dc3A010C7d01b50e0d17dc79C8")}))
	assert.Contains(t, buf.String(), "0x70997970C51812dc3A010C7d01b50e0d17dc79C8")
}
