package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/fatih/color"
)

// DeploymentRenderer renders detailed information about a single deployment
type DeploymentRenderer struct {
	out    io.Writer
	format Format
}

// NewDeploymentRenderer creates a new deployment renderer
func NewDeploymentRenderer(out io.Writer, format Format) *DeploymentRenderer {
	return &DeploymentRenderer{
		out:    out,
		format: format,
	}
}

// Render renders detailed deployment information
func (r *DeploymentRenderer) Render(deployment *models.Deployment) error {
	if ok, err := WriteStructured(r.out, r.format, deployment); ok {
		return err
	}

	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "Deployment: %s\n", deployment.ID)
	fmt.Fprintln(r.out, strings.Repeat("=", 80))

	fmt.Fprintln(r.out, "\nBasic Information:")
	fmt.Fprintf(r.out, "  Contract: %s\n", color.New(color.FgYellow).Sprint(deployment.ContractName))
	fmt.Fprintf(r.out, "  Alias: %s\n", deployment.DisplayName())
	fmt.Fprintf(r.out, "  Address: %s\n", deployment.Address)
	fmt.Fprintf(r.out, "  Network: %s (chain %d)\n", deployment.Network, deployment.ChainID)

	fmt.Fprintln(r.out, "\nTransaction:")
	fmt.Fprintf(r.out, "  Hash: %s\n", deployment.TransactionHash)
	fmt.Fprintf(r.out, "  Block: %d\n", deployment.BlockNumber)
	fmt.Fprintf(r.out, "  Gas Used: %d\n", deployment.GasUsed)
	fmt.Fprintf(r.out, "  Deployer: %s\n", deployment.Deployer)

	fmt.Fprintln(r.out, "\nArtifact:")
	fmt.Fprintf(r.out, "  Path: %s\n", deployment.ArtifactPath)
	if deployment.SourceName != "" {
		fmt.Fprintf(r.out, "  Source: %s\n", deployment.SourceName)
	}

	fmt.Fprintf(r.out, "\nDeployed: %s\n", deployment.CreatedAt.Format("2006-01-02 15:04:05"))
	return nil
}
