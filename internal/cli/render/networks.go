package render

import (
	"fmt"
	"io"

	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/fatih/color"
)

type networkView struct {
	Name    string `json:"name"`
	ChainID uint64 `json:"chainId,omitempty"`
	RPCURL  string `json:"rpcUrl,omitempty"`
	Local   bool   `json:"local"`
	Current bool   `json:"current"`
	Error   string `json:"error,omitempty"`
}

// NetworksRenderer renders network lists
type NetworksRenderer struct {
	out    io.Writer
	format Format
}

// NewNetworksRenderer creates a new networks renderer
func NewNetworksRenderer(out io.Writer, format Format) *NetworksRenderer {
	return &NetworksRenderer{
		out:    out,
		format: format,
	}
}

// Render renders the list of networks
func (r *NetworksRenderer) Render(result *usecase.ListNetworksResult) error {
	if r.format != FormatTable {
		views := make([]networkView, 0, len(result.Networks))
		for _, n := range result.Networks {
			view := networkView{
				Name:    n.Name,
				ChainID: n.ChainID,
				RPCURL:  n.RPCURL,
				Local:   n.Local,
				Current: n.Name == result.Current,
			}
			if n.Error != nil {
				view.Error = n.Error.Error()
			}
			views = append(views, view)
		}
		_, err := WriteStructured(r.out, r.format, views)
		return err
	}

	fmt.Fprintln(r.out, "🌐 Available Networks:")
	fmt.Fprintln(r.out)

	for _, network := range result.Networks {
		marker := " "
		if network.Name == result.Current {
			marker = color.New(color.FgCyan).Sprint("*")
		}

		if network.Error != nil {
			fmt.Fprintf(r.out, "%s ❌ %s - Error: %v\n", marker, network.Name, network.Error)
			continue
		}

		line := fmt.Sprintf("%s ✅ %s - Chain ID: ", marker, network.Name)
		if network.ChainID == 0 {
			line += "from RPC"
		} else {
			line += fmt.Sprintf("%d", network.ChainID)
		}
		if network.RPCURL != "" {
			line += color.New(color.Faint).Sprintf(" (%s)", network.RPCURL)
		}
		if network.Local {
			line += color.New(color.FgYellow).Sprint(" [local]")
		}
		fmt.Fprintln(r.out, line)
	}

	return nil
}
