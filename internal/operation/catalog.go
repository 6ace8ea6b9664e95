// Package operation describes the analyses the backend offers and the targets they accept.
package operation

import (
	"fmt"
	"sort"
	"strings"
)

// Group serializes operations: only one operation of a group may be in flight.
type Group string

const (
	GroupAI     Group = "ai"
	GroupScan   Group = "scan"
	GroupTest   Group = "test"
	GroupReport Group = "report"
)

// Groups lists the dashboard tabs in display order.
var Groups = []Group{GroupAI, GroupScan, GroupTest, GroupReport}

var groupLabels = map[Group]string{
	GroupAI:     "AI Analysis",
	GroupScan:   "Code Scan",
	GroupTest:   "Test Execution",
	GroupReport: "Reports",
}

// Label is the tab title of the group.
func (g Group) Label() string {
	if l, ok := groupLabels[g]; ok {
		return l
	}
	return string(g)
}

// ParseGroup returns the group named name, or def when name is unknown.
func ParseGroup(name string, def Group) Group {
	g := Group(strings.ToLower(strings.TrimSpace(name)))
	if _, ok := groupLabels[g]; ok {
		return g
	}
	return def
}

// TargetKinds is a bit set of the target forms an operation accepts.
type TargetKinds uint8

const (
	AcceptsRepo TargetKinds = 1 << iota
	AcceptsPath

	AcceptsAny = AcceptsRepo | AcceptsPath
)

// Operation is one backend analysis.
type Operation struct {
	ID          string
	Group       Group
	Name        string
	Description string
	Endpoint    string
	// RequestID marks operations whose payload carries a correlation token.
	RequestID bool
	Accepts   TargetKinds
	// Missing is reported when no usable target was given.
	Missing string
}

// Operation identifiers.
const (
	CodeInsights         = "code_insights"
	DefectPrediction     = "defect_prediction"
	TestGapAnalysis      = "test_gap_analysis"
	RefactorAdvisor      = "refactor_advisor"
	MemoryLeakPrediction = "memory_leak_prediction"
	ScanRepository       = "scan_repository"
	ScanFiles            = "scan_files"
	RunTests             = "run_tests"
	TechDebt             = "tech_debt"
)

const missingAny = "Please provide either a repository URL or a file path"

var catalog = []Operation{
	aiOperation(CodeInsights, "Code Insights", "Get AI-powered insights about your codebase"),
	aiOperation(DefectPrediction, "Defect Prediction", "Predict potential defects in your code"),
	aiOperation(TestGapAnalysis, "Test Gap Analysis", "Analyze gaps in test coverage"),
	aiOperation(RefactorAdvisor, "Refactor Advisor", "Get recommendations for code refactoring"),
	aiOperation(MemoryLeakPrediction, "Memory Leak Prediction", "Identify potential memory leaks"),
	{
		ID:          ScanRepository,
		Group:       GroupScan,
		Name:        "Scan Repository",
		Description: "Scan a remote repository for potential issues",
		Endpoint:    "/scan/repository",
		RequestID:   true,
		Accepts:     AcceptsRepo,
		Missing:     "Please provide a repository URL",
	},
	{
		ID:          ScanFiles,
		Group:       GroupScan,
		Name:        "Scan Files",
		Description: "Scan local files for potential issues",
		Endpoint:    "/scan/files",
		RequestID:   true,
		Accepts:     AcceptsPath,
		Missing:     "Please provide a file path",
	},
	{
		ID:          RunTests,
		Group:       GroupTest,
		Name:        "Run Tests",
		Description: "Execute the test suite in a directory and report pass/fail status",
		Endpoint:    "/test/run",
		RequestID:   true,
		Accepts:     AcceptsPath,
		Missing:     "Please provide a test path",
	},
	{
		ID:          TechDebt,
		Group:       GroupReport,
		Name:        "Generate Tech Debt Report",
		Description: "Technical debt score, risk level and recommendations",
		Endpoint:    "/report/tech-debt",
		RequestID:   true,
		Accepts:     AcceptsAny,
		Missing:     missingAny,
	},
}

func aiOperation(id, name, description string) Operation {
	return Operation{
		ID:          id,
		Group:       GroupAI,
		Name:        name,
		Description: description,
		Endpoint:    "/ai/" + id,
		Accepts:     AcceptsAny,
		Missing:     missingAny,
	}
}

// All returns every operation in catalog order.
func All() []Operation {
	out := make([]Operation, len(catalog))
	copy(out, catalog)
	return out
}

// InGroup returns the operations of g in catalog order.
func InGroup(g Group) []Operation {
	var out []Operation
	for _, op := range catalog {
		if op.Group == g {
			out = append(out, op)
		}
	}
	return out
}

// Lookup finds an operation by id. Dashes are accepted in place of underscores.
func Lookup(id string) (Operation, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(id)), "-", "_")
	for _, op := range catalog {
		if op.ID == normalized {
			return op, nil
		}
	}
	return Operation{}, fmt.Errorf("unknown operation %q, expected one of: %s", id, strings.Join(IDs(""), ", "))
}

// IDs returns the sorted ids of the operations in group g, or of all operations when g is empty.
func IDs(g Group) []string {
	var ids []string
	for _, op := range catalog {
		if g == "" || op.Group == g {
			ids = append(ids, op.ID)
		}
	}
	sort.Strings(ids)
	return ids
}

// AcceptsKind reports whether the operation takes targets of kind k.
func (o Operation) AcceptsKind(k TargetKinds) bool {
	return o.Accepts&k != 0
}
