package render

import (
	"fmt"
	"io"
	"regexp"
	"sort"
	"strings"

	"github.com/dappctl/dappctl/internal/domain/models"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Color styles for table format
var (
	networkBg          = color.BgYellow
	chainBg            = color.BgCyan
	networkHeader      = color.New(networkBg, color.FgBlack)
	networkHeaderBold  = color.New(networkBg, color.FgBlack, color.Bold)
	chainHeader        = color.New(chainBg, color.FgBlack)
	chainHeaderBold    = color.New(chainBg, color.FgBlack, color.Bold)
	nameStyle          = color.New(color.FgGreen, color.Bold)
	contractStyle      = color.New(color.Faint)
	addressStyle       = color.New(color.FgWhite)
	txStyle            = color.New(color.FgCyan)
	timestampStyle     = color.New(color.Faint)
	sectionHeaderStyle = color.New(color.Bold, color.FgHiWhite)
)

type TableData [][]string

// DeploymentsRenderer renders deployment lists as formatted tables with tree-style layout
type DeploymentsRenderer struct {
	out    io.Writer
	format Format
}

// NewDeploymentsRenderer creates a new deployments renderer
func NewDeploymentsRenderer(out io.Writer, format Format) *DeploymentsRenderer {
	return &DeploymentsRenderer{
		out:    out,
		format: format,
	}
}

// Render renders deployments grouped by network and chain
func (r *DeploymentsRenderer) Render(result *usecase.DeploymentListResult) error {
	if ok, err := WriteStructured(r.out, r.format, result.Deployments); ok {
		return err
	}

	if len(result.Deployments) == 0 {
		fmt.Fprintln(r.out, "No deployments found")
		return nil
	}

	r.displayTableFormat(result.Deployments)
	return nil
}

// displayTableFormat shows deployments in table format
func (r *DeploymentsRenderer) displayTableFormat(deployments []*models.Deployment) {
	// Group by network and chain
	groups := make(map[string]map[uint64][]*models.Deployment)
	for _, dep := range deployments {
		if groups[dep.Network] == nil {
			groups[dep.Network] = make(map[uint64][]*models.Deployment)
		}
		groups[dep.Network][dep.ChainID] = append(groups[dep.Network][dep.ChainID], dep)
	}

	networks := make([]string, 0, len(groups))
	for network := range groups {
		networks = append(networks, network)
	}
	sort.Strings(networks)

	// Build all tables first so column widths line up across groups
	tables := make(map[string]map[uint64]TableData)
	var allTables []TableData
	for _, network := range networks {
		tables[network] = make(map[uint64]TableData)
		for chainID, chainDeployments := range groups[network] {
			t := r.buildDeploymentTable(chainDeployments)
			tables[network][chainID] = t
			allTables = append(allTables, t)
		}
	}
	globalColumnWidths := calculateTableColumnWidths(allTables)

	for _, network := range networks {
		networkLabel := fmt.Sprintf("%-12s", "network:")
		networkValue := fmt.Sprintf("%-30s", strings.ToUpper(network))
		fmt.Fprintln(r.out, networkHeader.Sprintf("   ◎ %s %s", networkLabel, networkHeaderBold.Sprint(networkValue)))

		chainIDs := sortedChainIDs(groups[network])
		for idx, chainID := range chainIDs {
			isLast := idx == len(chainIDs)-1
			treePrefix := "├─"
			continuationPrefix := "│ "
			if isLast {
				treePrefix = "└─"
				continuationPrefix = "  "
			}

			chainLabel := fmt.Sprintf("%-12s", "chain:")
			chainValue := fmt.Sprintf("%-30s", fmt.Sprintf("%d", chainID))
			fmt.Fprintf(r.out, "%s%s%s\n",
				treePrefix,
				chainHeader.Sprintf(" ⛓ %s ", chainLabel),
				chainHeaderBold.Sprint(chainValue))
			fmt.Fprintln(r.out, continuationPrefix)

			fmt.Fprintf(r.out, "%s%s\n", continuationPrefix, sectionHeaderStyle.Sprint("CONTRACTS"))
			fmt.Fprint(r.out, renderTableWithWidths(tables[network][chainID], globalColumnWidths, continuationPrefix))
			fmt.Fprintln(r.out)

			if !isLast {
				fmt.Fprintln(r.out, continuationPrefix)
			} else {
				fmt.Fprintln(r.out)
			}
		}
	}

	fmt.Fprintf(r.out, "Total deployments: %d\n", len(deployments))
}

func sortedChainIDs(chains map[uint64][]*models.Deployment) []uint64 {
	chainIDs := make([]uint64, 0, len(chains))
	for chainID := range chains {
		chainIDs = append(chainIDs, chainID)
	}
	sort.Slice(chainIDs, func(i, j int) bool { return chainIDs[i] < chainIDs[j] })
	return chainIDs
}

// buildDeploymentTable creates a TableData for a list of deployments
func (r *DeploymentsRenderer) buildDeploymentTable(deployments []*models.Deployment) TableData {
	tableData := make(TableData, 0, len(deployments))

	for _, deployment := range deployments {
		nameCell := nameStyle.Sprint(deployment.DisplayName())
		if deployment.Alias != "" && deployment.Alias != deployment.ContractName {
			nameCell += " " + contractStyle.Sprintf("(%s)", deployment.ContractName)
		}

		tableData = append(tableData, []string{
			nameCell,
			addressStyle.Sprint(deployment.Address),
			txStyle.Sprint(shortHash(deployment.TransactionHash)),
			timestampStyle.Sprint(deployment.CreatedAt.Format("2006-01-02 15:04:05")),
		})
	}

	return tableData
}

// renderTableWithWidths renders a table with specific column widths
func renderTableWithWidths(tableData TableData, columnWidths []int, continuationPrefix string) string {
	if len(tableData) == 0 {
		return ""
	}

	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}

	colConfigs := make([]table.ColumnConfig, len(columnWidths))
	for i, width := range columnWidths {
		if i == 0 {
			width += 2 + len([]rune(continuationPrefix))
		}
		colConfigs[i] = table.ColumnConfig{
			Number:   i + 1,
			Align:    text.AlignLeft,
			WidthMin: width,
			WidthMax: width,
		}
	}
	t.SetColumnConfigs(colConfigs)

	for _, row := range tableData {
		tableRow := make(table.Row, len(row))
		for i, cell := range row {
			if i == 0 {
				tableRow[i] = continuationPrefix + cell
			} else {
				tableRow[i] = cell
			}
		}
		t.AppendRow(tableRow)
	}

	return t.Render()
}

var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[mGKHF]`)

// stripAnsiCodes removes ANSI escape sequences from a string
func stripAnsiCodes(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// calculateTableColumnWidths calculates column widths for multiple tables
func calculateTableColumnWidths(tables []TableData) []int {
	if len(tables) == 0 {
		return nil
	}

	maxCols := 0
	for _, table := range tables {
		for _, row := range table {
			if len(row) > maxCols {
				maxCols = len(row)
			}
		}
	}

	widths := make([]int, maxCols)
	for _, table := range tables {
		for _, row := range table {
			for colIdx, cell := range row {
				// Strip ANSI codes for width calculation
				cellWidth := len([]rune(stripAnsiCodes(cell)))
				if cellWidth > widths[colIdx] {
					widths[colIdx] = cellWidth
				}
			}
		}
	}

	return widths
}
