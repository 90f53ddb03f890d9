package render

import (
	"fmt"
	"io"
	"math/big"

	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/ethereum/go-ethereum/params"
	"github.com/jedib0t/go-pretty/v6/table"
)

// AccountsRenderer renders the signers of a network
type AccountsRenderer struct {
	out    io.Writer
	format Format
}

// NewAccountsRenderer creates a new accounts renderer
func NewAccountsRenderer(out io.Writer, format Format) *AccountsRenderer {
	return &AccountsRenderer{out: out, format: format}
}

// Render prints one row per account with its balance in ether
func (r *AccountsRenderer) Render(result *usecase.ListAccountsResult) error {
	if ok, err := WriteStructured(r.out, r.format, result.Accounts); ok {
		return err
	}

	fmt.Fprintf(r.out, "Accounts on %s (chain %d):\n\n", result.Network.Name, result.ChainID)

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"#", "Address", "Balance (ETH)"})
	for _, account := range result.Accounts {
		t.AppendRow(table.Row{account.Index, account.Address.Hex(), FormatEther(account.Balance)})
	}
	fmt.Fprintln(r.out, t.Render())
	return nil
}

// FormatEther converts wei to a decimal ether string
func FormatEther(wei *big.Int) string {
	if wei == nil {
		return "0"
	}
	f := new(big.Float).SetInt(wei)
	f.Quo(f, new(big.Float).SetInt64(params.Ether))
	return f.Text('f', 4)
}
