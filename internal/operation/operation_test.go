package operation

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/errors"
)

func mustLookup(t *testing.T, id string) Operation {
	t.Helper()
	op, err := Lookup(id)
	require.NoError(t, err)
	return op
}

func TestCatalogEndpoints(t *testing.T) {
	tests := []struct {
		id        string
		group     Group
		endpoint  string
		requestID bool
		accepts   TargetKinds
	}{
		{CodeInsights, GroupAI, "/ai/code_insights", false, AcceptsAny},
		{DefectPrediction, GroupAI, "/ai/defect_prediction", false, AcceptsAny},
		{TestGapAnalysis, GroupAI, "/ai/test_gap_analysis", false, AcceptsAny},
		{RefactorAdvisor, GroupAI, "/ai/refactor_advisor", false, AcceptsAny},
		{MemoryLeakPrediction, GroupAI, "/ai/memory_leak_prediction", false, AcceptsAny},
		{ScanRepository, GroupScan, "/scan/repository", true, AcceptsRepo},
		{ScanFiles, GroupScan, "/scan/files", true, AcceptsPath},
		{RunTests, GroupTest, "/test/run", true, AcceptsPath},
		{TechDebt, GroupReport, "/report/tech-debt", true, AcceptsAny},
	}

	assert.Len(t, All(), len(tests))
	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			op := mustLookup(t, tt.id)
			assert.Equal(t, tt.group, op.Group)
			assert.Equal(t, tt.endpoint, op.Endpoint)
			assert.Equal(t, tt.requestID, op.RequestID)
			assert.Equal(t, tt.accepts, op.Accepts)
			assert.NotEmpty(t, op.Name)
		})
	}
}

func TestLookup(t *testing.T) {
	op, err := Lookup(" Tech-Debt ")
	require.NoError(t, err)
	assert.Equal(t, TechDebt, op.ID)

	_, err = Lookup("lint")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown operation "lint"`)
}

func TestInGroup(t *testing.T) {
	ai := InGroup(GroupAI)
	require.Len(t, ai, 5)
	assert.Equal(t, CodeInsights, ai[0].ID)
	assert.Equal(t, "AI Analysis", GroupAI.Label())
	assert.Equal(t, "Reports", GroupReport.Label())
	assert.Equal(t, []string{ScanFiles, ScanRepository}, IDs(GroupScan))
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name    string
		op      string
		target  Target
		want    Resolved
		wantErr string
	}{
		{
			name:   "repository with default branch",
			op:     CodeInsights,
			target: Target{RepoURL: "  https://github.com/acme/shop.git "},
			want:   Resolved{Kind: AcceptsRepo, RepoURL: "https://github.com/acme/shop.git", Branch: "main"},
		},
		{
			name:   "path wins over repository",
			op:     TechDebt,
			target: Target{RepoURL: "https://github.com/acme/shop", Branch: "dev", Path: " /src/shop "},
			want:   Resolved{Kind: AcceptsPath, Path: "/src/shop"},
		},
		{
			name:   "blank path falls back to repository",
			op:     DefectPrediction,
			target: Target{RepoURL: "https://github.com/acme/shop", Branch: "dev", Path: "   "},
			want:   Resolved{Kind: AcceptsRepo, RepoURL: "https://github.com/acme/shop", Branch: "dev"},
		},
		{
			name:    "nothing given",
			op:      CodeInsights,
			target:  Target{Branch: "main"},
			wantErr: "Please provide either a repository URL or a file path",
		},
		{
			name:   "repository only operation ignores path",
			op:     ScanRepository,
			target: Target{RepoURL: "https://github.com/acme/shop", Path: "/src"},
			want:   Resolved{Kind: AcceptsRepo, RepoURL: "https://github.com/acme/shop", Branch: "main"},
		},
		{
			name:    "repository only operation without repository",
			op:      ScanRepository,
			target:  Target{Path: "/src"},
			wantErr: "Please provide a repository URL",
		},
		{
			name:    "path only operation without path",
			op:      ScanFiles,
			target:  Target{RepoURL: "https://github.com/acme/shop"},
			wantErr: "Please provide a file path",
		},
		{
			name:    "tests without path",
			op:      RunTests,
			target:  Target{},
			wantErr: "Please provide a test path",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.target.Resolve(mustLookup(t, tt.op))
			if tt.wantErr != "" {
				require.Error(t, err)
				var valErr *errors.ValidationError
				assert.ErrorAs(t, err, &valErr)
				assert.EqualError(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewPayload(t *testing.T) {
	repo := Resolved{Kind: AcceptsRepo, RepoURL: "https://github.com/acme/shop", Branch: "main"}
	path := Resolved{Kind: AcceptsPath, Path: "/src/shop"}

	tests := []struct {
		name   string
		op     string
		target Resolved
		want   string
	}{
		{"ai on repository", CodeInsights, repo, `{"args":{"repoUrl":"https://github.com/acme/shop","branch":"main"}}`},
		{"ai on path", MemoryLeakPrediction, path, `{"args":{"path":"/src/shop"}}`},
		{"scan repository", ScanRepository, repo, `{"requestId":"req-1","args":{"repoUrl":"https://github.com/acme/shop","branch":"main"}}`},
		{"scan files", ScanFiles, path, `{"requestId":"req-1","args":{"path":"/src/shop"}}`},
		{"run tests", RunTests, path, `{"requestId":"req-1","args":{"path":"/src/shop"}}`},
		{"tech debt on repository", TechDebt, repo, `{"requestId":"req-1","args":{"repoUrl":"https://github.com/acme/shop","branch":"main"}}`},
		{"tech debt on path", TechDebt, path, `{"args":{"path":"/src/shop"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, err := json.Marshal(NewPayload(mustLookup(t, tt.op), tt.target, "req-1"))
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(body))
		})
	}
}

func TestNewRequestIDIsUnique(t *testing.T) {
	a, b := NewRequestID(), NewRequestID()
	assert.True(t, strings.HasPrefix(a, "req-"))
	assert.NotEqual(t, a, b)
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, "acme/shop", DescribeRepository("https://github.com/acme/shop.git"))
	assert.Equal(t, "", DescribeRepository("  "))
	assert.Equal(t, "shop", Describe(Resolved{Kind: AcceptsPath, Path: "/src/shop/"}))
	assert.Equal(t, "acme/shop (dev)", Describe(Resolved{Kind: AcceptsRepo, RepoURL: "https://github.com/acme/shop", Branch: "dev"}))
}
