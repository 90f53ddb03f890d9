package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/dappctl/dappctl/internal/app"
	"github.com/dappctl/dappctl/internal/cli/render"
	"github.com/dappctl/dappctl/internal/domain/config"
	"github.com/dappctl/dappctl/internal/usecase"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// answerBytecode deploys a contract whose every call returns 42
const answerBytecode = "0x600a600c600039600a6000f3602a60005260206000f3"

func findCmd(t *testing.T, root *cobra.Command, args ...string) *cobra.Command {
	t.Helper()
	cmd, _, err := root.Find(args)
	require.NoError(t, err)
	return cmd
}

func TestRootCommandTree(t *testing.T) {
	root := NewRootCmd()

	for _, path := range [][]string{
		{"deploy"},
		{"check"},
		{"healthcare", "authorize-doctor"},
		{"healthcare", "add-patient"},
		{"healthcare", "update-patient"},
		{"healthcare", "patient"},
		{"healthcare", "doctor"},
		{"healthcare", "doctor-count"},
		{"healthcare", "doctors"},
		{"list"},
		{"show"},
		{"networks"},
		{"accounts"},
		{"version"},
	} {
		cmd := findCmd(t, root, path...)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}

	for _, flag := range []string{"network", "debug", "non-interactive", "json", "timeout", "artifacts", "frontend-dir"} {
		assert.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestSkipsApp(t *testing.T) {
	root := NewRootCmd()

	assert.True(t, skipsApp(findCmd(t, root, "version")))
	assert.False(t, skipsApp(findCmd(t, root, "deploy")))

	check := findCmd(t, root, "check")
	assert.False(t, skipsApp(check))
	require.NoError(t, check.Flags().Set("list", "true"))
	assert.True(t, skipsApp(check))
}

func TestOutputFormat(t *testing.T) {
	newCmd := func() *cobra.Command {
		cmd := &cobra.Command{Use: "x"}
		addOutputFlag(cmd)
		return cmd
	}

	plain := &app.App{Config: &config.RuntimeConfig{}}
	jsonApp := &app.App{Config: &config.RuntimeConfig{JSON: true}}

	format, err := outputFormat(newCmd(), plain)
	require.NoError(t, err)
	assert.Equal(t, render.FormatTable, format)

	format, err = outputFormat(newCmd(), jsonApp)
	require.NoError(t, err)
	assert.Equal(t, render.FormatJSON, format)

	cmd := newCmd()
	require.NoError(t, cmd.Flags().Set("output", "yaml"))
	format, err = outputFormat(cmd, jsonApp)
	require.NoError(t, err)
	assert.Equal(t, render.FormatYAML, format)

	cmd = newCmd()
	require.NoError(t, cmd.Flags().Set("output", "xml"))
	_, err = outputFormat(cmd, plain)
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "dappctl version dev")
}

func TestDeployToInProcessNetwork(t *testing.T) {
	project := t.TempDir()
	writeProjectFile(t, project, "dappctl.toml", `
[deploy]
contract = "answer"
`)
	writeProjectFile(t, project, "artifacts/contracts/answer.sol/answer.json", `{
  "_format": "hh-sol-artifact-1",
  "contractName": "answer",
  "sourceName": "contracts/answer.sol",
  "abi": [],
  "bytecode": "`+answerBytecode+`"
}`)
	t.Chdir(project)

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"deploy", "--non-interactive"})

	require.NoError(t, root.Execute())

	assert.Contains(t, out.String(), "Deploying the contracts with the account: 0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	assert.Contains(t, out.String(), "Answer smart contract address: 0x5FbDB2315678afecb367f032d93F642f64180aa3")

	data, err := os.ReadFile(filepath.Join(project, "src", "contracts", "contract-address.json"))
	require.NoError(t, err)
	var addresses map[string]string
	require.NoError(t, json.Unmarshal(data, &addresses))
	assert.Equal(t, map[string]string{"Answer": "0x5FbDB2315678afecb367f032d93F642f64180aa3"}, addresses)

	assert.FileExists(t, filepath.Join(project, "src", "contracts", "Answer.json"))

	// The in-process chain is discarded, so nothing is recorded
	assert.NoFileExists(t, filepath.Join(project, ".dappctl", "deployments.json"))
}

func TestCheckListDoesNotNeedProject(t *testing.T) {
	t.Chdir(t.TempDir())

	root := NewRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"check", "--list"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "authorize-doctor")
	assert.Contains(t, out.String(), "doctors-by-specialization")
}

func writeProjectFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

type stoppingSink struct {
	usecase.NopProgress
	stopped int
}

func (s *stoppingSink) Stop() { s.stopped++ }

func TestProgressStopsWhenCommandFinishes(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{name: "success"},
		{name: "failure", err: errors.New("deployment failed")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sink := &stoppingSink{}
			root := &cobra.Command{Use: "dappctl", SilenceUsage: true, SilenceErrors: true}
			root.AddCommand(&cobra.Command{
				Use:  "deploy",
				RunE: func(cmd *cobra.Command, args []string) error { return tt.err },
			})
			stopProgressAfterRun(root)

			root.SetArgs([]string{"deploy"})
			root.SetContext(context.WithValue(context.Background(), appKey, &app.App{Progress: sink}))
			err := root.Execute()

			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, 1, sink.stopped)
		})
	}
}
