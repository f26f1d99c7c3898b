package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/mathdemo/internal/demo"
	"github.com/roach88/mathdemo/internal/mathutil"
)

func newTestCommand(opts *RootOptions) (*cobra.Command, *bytes.Buffer, *bytes.Buffer) {
	if opts.RunIDs == nil {
		opts.RunIDs = NewFixedGenerator("run-0001")
	}
	cmd := newRootCommand(opts)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd, stdout, stderr
}

func newGoldie(t *testing.T) *goldie.Goldie {
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}

func negativeScript() *demo.Script {
	return &demo.Script{A: 5, B: 10, RootInput: -16, Sequence: mathutil.Sequence{1, 2, 3}}
}

func TestRun_TextGolden(t *testing.T) {
	cmd, stdout, stderr := newTestCommand(&RootOptions{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, GetExitCode(err))
	assert.Empty(t, stderr.String(), "default run writes nothing to stderr")

	newGoldie(t).Assert(t, "run_text", stdout.Bytes())
}

func TestRun_JSONGolden(t *testing.T) {
	cmd, stdout, stderr := newTestCommand(&RootOptions{})
	cmd.SetArgs([]string{"--format", "json"})

	require.NoError(t, cmd.Execute())
	assert.Empty(t, stderr.String())

	newGoldie(t).Assert(t, "run_json", stdout.Bytes())
}

func TestRun_JSONEnvelope(t *testing.T) {
	cmd, stdout, _ := newTestCommand(&RootOptions{RunIDs: UUIDv7Generator{}})
	cmd.SetArgs([]string{"--format", "json"})
	require.NoError(t, cmd.Execute())

	var resp struct {
		Status  string      `json:"status"`
		Data    demo.Report `json:"data"`
		TraceID string      `json:"trace_id"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Len(t, resp.TraceID, 36)
	assert.Equal(t, 15, resp.Data.Sum.Result)
	assert.Equal(t, 4.0, resp.Data.Root.Result)
	assert.True(t, resp.Data.Root.OK)
	assert.Equal(t, mathutil.Sequence{1, 2, 3, 4, 5}, resp.Data.Sequence)
}

func TestRun_YAML(t *testing.T) {
	cmd, stdout, _ := newTestCommand(&RootOptions{})
	cmd.SetArgs([]string{"--format", "yaml"})
	require.NoError(t, cmd.Execute())

	var resp struct {
		Status  string      `yaml:"status"`
		Data    demo.Report `yaml:"data"`
		TraceID string      `yaml:"trace_id"`
	}
	require.NoError(t, yaml.Unmarshal(stdout.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "run-0001", resp.TraceID)
	assert.Equal(t, demo.Compute(nil), resp.Data)
}

func TestRun_TextNegativeRootSkipsLine(t *testing.T) {
	cmd, stdout, stderr := newTestCommand(&RootOptions{Script: negativeScript()})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)
	assert.Equal(t, ExitSuccess, GetExitCode(err))

	assert.Equal(t, "Sum of 5 and 10: 15\nArray elements: 1 2 3 \n", stdout.String())
	assert.Equal(t, mathutil.NegativeInputMessage+"\n", stderr.String())
}

func TestRun_JSONNegativeRootReportsError(t *testing.T) {
	cmd, stdout, stderr := newTestCommand(&RootOptions{Script: negativeScript()})
	cmd.SetArgs([]string{"--format", "json"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, mathutil.NegativeInputMessage+"\n", stderr.String())

	var resp CLIResponse
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNegativeInput, resp.Error.Code)
	assert.Equal(t, "run-0001", resp.TraceID)
}

func TestRun_VerboseLogsToStderr(t *testing.T) {
	cmd, stdout, stderr := newTestCommand(&RootOptions{})
	cmd.SetArgs([]string{"--verbose"})

	require.NoError(t, cmd.Execute())

	newGoldie(t).Assert(t, "run_text", stdout.Bytes())
	assert.Contains(t, stderr.String(), "Run run-0001")
	assert.Contains(t, stderr.String(), `msg="computed sum"`)
	assert.Contains(t, stderr.String(), `msg="computed square root"`)
	assert.Contains(t, stderr.String(), `msg="printed sequence"`)
}
