package render

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/fatih/color"
)

// DeployRenderer renders the outcome of a deployment
type DeployRenderer struct {
	out    io.Writer
	format Format
}

// NewDeployRenderer creates a new deploy renderer
func NewDeployRenderer(out io.Writer, format Format) *DeployRenderer {
	return &DeployRenderer{out: out, format: format}
}

// Render prints a summary of where the contract went and which files were written
func (r *DeployRenderer) Render(result *usecase.DeployContractResult) error {
	if ok, err := WriteStructured(r.out, r.format, result.Deployment); ok {
		return err
	}

	dep := result.Deployment
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("Deployed %s to %s (chain %d)", dep.DisplayName(), result.Network.Name, dep.ChainID)))
	fmt.Fprintf(r.out, "  Address: %s\n", color.New(color.FgWhite, color.Bold).Sprint(dep.Address))
	fmt.Fprintf(r.out, "  Transaction: %s (block %d, gas %d)\n", dep.TransactionHash, dep.BlockNumber, dep.GasUsed)
	fmt.Fprintf(r.out, "  Frontend files: %s, %s\n",
		filepath.Join(result.FrontendDir, usecase.ContractAddressFile),
		filepath.Join(result.FrontendDir, dep.DisplayName()+".json"))
	if result.PublishedTo != "" {
		fmt.Fprintf(r.out, "  Published to: %s\n", result.PublishedTo)
	}
	if !result.Recorded {
		fmt.Fprintln(r.out, FormatWarning(fmt.Sprintf("%s is discarded on exit; the deployment was not recorded", result.Network.Name)))
	}
	return nil
}
