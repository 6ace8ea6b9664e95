package sarif

import (
	"fmt"
	"io"
	"sort"

	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/findings"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/git"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/session"
)

// Tool identification written into every run.
const (
	ToolName           = "qadash"
	ToolInformationURI = "https://github.com/chandan24042001s/qa-mcp-dashboard"
)

// defaultRuleID is used for findings without a bug type.
const defaultRuleID = "finding"

// Report wraps a SARIF log built from a result.
type Report struct {
	*sarif.Report
}

// Options tune the generated log.
type Options struct {
	Version    string
	Repository *git.RepositoryMetadata
}

// NewReport converts the findings of r into a SARIF 2.1.0 log with one run. Each bug type
// becomes a rule; each finding becomes a result located at the analysed target.
func NewReport(r *session.Result, opts Options) (*Report, error) {
	report, err := sarif.New(sarif.Version210)
	if err != nil {
		return nil, fmt.Errorf("failed to create SARIF report: %w", err)
	}

	run := sarif.NewRunWithInformationURI(ToolName, ToolInformationURI)
	if opts.Version != "" {
		run.Tool.Driver.WithVersion(opts.Version)
	}
	addProvenance(run, r, opts.Repository)

	rules := map[string]bool{}
	artifact := artifactURI(r, opts.Repository)

	for _, f := range r.Findings {
		ruleID := ruleIDFor(f)
		if !rules[ruleID] {
			rules[ruleID] = true
			run.AddRule(ruleID).
				WithName(ruleID).
				WithShortDescription(sarif.NewMultiformatMessageString(ruleID))
		}

		level := levelFromSeverity(f.Severity)
		result := run.CreateResultForRule(ruleID).
			WithLevel(level).
			WithMessage(sarif.NewTextMessage(messageFor(f)))
		if result.Properties == nil {
			result.Properties = make(sarif.Properties)
		}
		result.Add("Level", level)
		result.Add("severity", f.Severity)
		result.Add("evidence", f.Evidence)
		result.Add("operation", r.Operation.ID)

		if artifact != "" {
			physical := sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewSimpleArtifactLocation(artifact))
			if start, end := parseLineRange(f.LineNumber); start > 0 {
				physical.WithRegion(sarif.NewRegion().WithStartLine(start).WithEndLine(end))
			}
			result.AddLocation(sarif.NewLocationWithPhysicalLocation(physical))
		}
	}

	report.AddRun(run)
	out := &Report{Report: report}
	out.SortResultsByLevel()
	return out, nil
}

// CollectSeverityInfo counts results per display severity, plus a "total".
func (r Report) CollectSeverityInfo() map[string]int {
	severityInfo := map[string]int{
		"low":    0,
		"medium": 0,
		"high":   0,
		"total":  0,
	}

	for _, run := range r.Runs {
		for _, result := range run.Results {
			switch resultLevel(result) {
			case "error":
				severityInfo["high"]++
			case "warning":
				severityInfo["medium"]++
			default:
				severityInfo["low"]++
			}
			severityInfo["total"]++
		}
	}

	return severityInfo
}

// SortResultsByLevel orders results error, warning, note, none. Results of the same level keep
// their discovery order.
func (r Report) SortResultsByLevel() {
	levelOrder := map[string]int{
		"error":   0,
		"warning": 1,
		"note":    2,
		"none":    3,
	}

	for _, run := range r.Runs {
		sort.SliceStable(run.Results, func(i, j int) bool {
			return levelOrder[resultLevel(run.Results[i])] < levelOrder[resultLevel(run.Results[j])]
		})
	}
}

// Write writes the log as indented JSON.
func (r Report) Write(w io.Writer) error {
	return r.Report.PrettyWrite(w)
}

func resultLevel(result *sarif.Result) string {
	if result.Level == nil {
		return "none"
	}
	return *result.Level
}

func ruleIDFor(f findings.Finding) string {
	if f.BugType == "" || f.BugType == findings.NotAvailable {
		return defaultRuleID
	}
	return f.BugType
}

func messageFor(f findings.Finding) string {
	if f.Reason != findings.NotAvailable && f.Reason != "" {
		return f.Reason
	}
	if f.Evidence != findings.NotAvailable && f.Evidence != "" {
		return f.Evidence
	}
	return ruleIDFor(f)
}

func artifactURI(r *session.Result, md *git.RepositoryMetadata) string {
	if r.Target.IsPath() {
		if md != nil && md.Subfolder != "" {
			return md.Subfolder
		}
		return r.Target.Path
	}
	return r.Target.RepoURL
}

func addProvenance(run *sarif.Run, r *session.Result, md *git.RepositoryMetadata) {
	switch {
	case md != nil && md.Remote() != "":
		vcs := sarif.NewVersionControlDetails().WithRepositoryURI(md.Remote())
		if md.CommitHash != nil {
			vcs.WithRevisionID(*md.CommitHash)
		}
		if b := md.Branch(); b != "" {
			vcs.WithBranch(b)
		}
		run.AddVersionControlProvenance(vcs)
	case r.Target.RepoURL != "":
		run.AddVersionControlProvenance(sarif.NewVersionControlDetails().
			WithRepositoryURI(r.Target.RepoURL).
			WithBranch(r.Target.Branch))
	}
}
