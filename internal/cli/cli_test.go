package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/config"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/document"
	qaerrors "github.com/chandan24042001s/qa-mcp-dashboard/internal/errors"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/export"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/operation"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/session"
)

type fakeCaller struct {
	doc    document.Value
	err    error
	target operation.Resolved
}

func (f *fakeCaller) Call(_ context.Context, _ operation.Operation, target operation.Resolved) (document.Value, error) {
	f.target = target
	return f.doc, f.err
}

func newRunner(t *testing.T, caller *fakeCaller) (*Runner, *bytes.Buffer) {
	t.Helper()
	var stdout bytes.Buffer
	return &Runner{
		Config: config.Default(),
		Logger: hclog.NewNullLogger(),
		Caller: caller,
		Stdout: &stdout,
	}, &stdout
}

func lookup(t *testing.T, id string) operation.Operation {
	t.Helper()
	op, err := operation.Lookup(id)
	require.NoError(t, err)
	return op
}

func parse(t *testing.T, src string) document.Value {
	t.Helper()
	doc, err := document.ParseJSON([]byte(src))
	require.NoError(t, err)
	return doc
}

func TestValidateOutput(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name    string
		options OutputOptions
		want    export.Format
		wantErr string
	}{
		{
			name:    "Default format",
			options: OutputOptions{},
			want:    export.FormatText,
		},
		{
			name:    "JSON to stdout",
			options: OutputOptions{Format: "json"},
			want:    export.FormatJSON,
		},
		{
			name:    "Unknown format",
			options: OutputOptions{Format: "pdf"},
			wantErr: `unsupported format "pdf", expected one of: html, json, sarif, text, xlsx`,
		},
		{
			name:    "Workbook without output",
			options: OutputOptions{Format: "xlsx"},
			wantErr: "the 'output' flag is required for the xlsx format",
		},
		{
			name:    "Workbook into a folder",
			options: OutputOptions{Format: "xlsx", OutputPath: tmpDir},
			want:    export.FormatXLSX,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ValidateOutput(&tt.options)
			if tt.wantErr != "" {
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAddTargetFlags(t *testing.T) {
	var repoOnly TargetOptions
	fs := pflag.NewFlagSet("scan", pflag.ContinueOnError)
	AddTargetFlags(fs, &repoOnly, operation.AcceptsRepo)
	assert.Nil(t, fs.Lookup("path"))
	require.NoError(t, fs.Parse([]string{"--repo", "https://github.com/acme/shop"}))
	assert.Equal(t, operation.DefaultBranch, repoOnly.Branch)
	assert.True(t, HasFlags(fs))

	var both TargetOptions
	fs = pflag.NewFlagSet("ai", pflag.ContinueOnError)
	AddTargetFlags(fs, &both, operation.AcceptsAny)
	require.NoError(t, fs.Parse(nil))
	assert.NotNil(t, fs.Lookup("path"))
	assert.False(t, HasFlags(fs))
	assert.Equal(t, operation.Target{Branch: operation.DefaultBranch}, both.Target())
}

func TestRunWritesText(t *testing.T) {
	caller := &fakeCaller{doc: parse(t, `{"status":"completed","findings":[{"type":"Leak","severity":"low"}]}`)}
	runner, stdout := newRunner(t, caller)

	err := runner.Run(context.Background(), lookup(t, operation.ScanRepository),
		operation.Target{RepoURL: "https://github.com/acme/shop"}, OutputOptions{NoProgress: true})
	require.NoError(t, err)

	assert.Equal(t, "https://github.com/acme/shop", caller.target.RepoURL)
	assert.Equal(t, operation.DefaultBranch, caller.target.Branch)
	assert.Contains(t, stdout.String(), "Scan Repository: acme/shop (main)")
	assert.Contains(t, stdout.String(), "Status: completed")
	assert.Contains(t, stdout.String(), "Leak")
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name     string
		caller   *fakeCaller
		target   operation.Target
		out      OutputOptions
		wantErr  string
		wantCode int
	}{
		{
			name:     "Missing target",
			caller:   &fakeCaller{},
			target:   operation.Target{},
			wantErr:  "Please provide a test path",
			wantCode: qaerrors.ExitValidation,
		},
		{
			name:     "Bad format",
			caller:   &fakeCaller{},
			target:   operation.Target{Path: "/src"},
			out:      OutputOptions{Format: "yaml"},
			wantErr:  `invalid arguments: unsupported format "yaml", expected one of: html, json, sarif, text, xlsx`,
			wantCode: qaerrors.ExitValidation,
		},
		{
			name:     "Backend failure",
			caller:   &fakeCaller{err: qaerrors.NewRequestError(operation.RunTests, 500, "tests crashed")},
			target:   operation.Target{Path: "/src"},
			wantErr:  "tests crashed",
			wantCode: qaerrors.ExitRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			runner, stdout := newRunner(t, tt.caller)
			tt.out.NoProgress = true

			err := runner.Run(context.Background(), lookup(t, operation.RunTests), tt.target, tt.out)
			assert.EqualError(t, err, tt.wantErr)
			assert.Equal(t, tt.wantCode, qaerrors.ExitCode(err))
			assert.Empty(t, stdout.String())
		})
	}
}

func TestRunSavesIntoFolder(t *testing.T) {
	caller := &fakeCaller{doc: parse(t, `{"findings":[]}`)}
	runner, stdout := newRunner(t, caller)
	outDir := filepath.Join(t.TempDir(), "reports")

	err := runner.Run(context.Background(), lookup(t, operation.TechDebt),
		operation.Target{Path: t.TempDir()}, OutputOptions{Format: "json", OutputPath: outDir, NoProgress: true})
	require.NoError(t, err)
	assert.Empty(t, stdout.String())

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Regexp(t, `^tech_debt-\d{8}-\d{6}\.json$`, entries[0].Name())
}

func TestDefaultFileName(t *testing.T) {
	now := time.Date(2026, 3, 1, 14, 5, 9, 0, time.UTC)
	r := &session.Result{Operation: lookup(t, operation.CodeInsights)}

	assert.Equal(t, "code_insights-20260301-140509.sarif", DefaultFileName(r, export.FormatSARIF, now))
	assert.Equal(t, "result-20260301-140509.txt", DefaultFileName(&session.Result{}, export.FormatText, now))
}

func TestRepositoryFor(t *testing.T) {
	logger := hclog.NewNullLogger()
	assert.Nil(t, RepositoryFor(operation.Resolved{Kind: operation.AcceptsRepo, RepoURL: "https://github.com/acme/shop"}, logger))
	assert.Nil(t, RepositoryFor(operation.Resolved{Kind: operation.AcceptsPath, Path: t.TempDir()}, logger))
}
