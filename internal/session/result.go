package session

import (
	"time"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/document"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/findings"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/operation"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/table"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/tree"
)

// Result is one displayed response with everything derived from it. It is computed once and
// not modified afterwards.
type Result struct {
	Operation  operation.Operation
	Target     operation.Resolved
	ReceivedAt time.Time
	Document   document.Value
	Findings   []findings.Finding
	Summary    findings.Summary
	Rows       []table.Row
	Tree       []tree.Node
}

// NewResult extracts and renders doc. Duplicated findings are kept unless dedupe is set.
func NewResult(op operation.Operation, target operation.Resolved, doc document.Value, dedupe bool) *Result {
	found := findings.Extract(doc)
	if dedupe {
		found = findings.Deduplicate(found)
	}
	return &Result{
		Operation:  op,
		Target:     target,
		ReceivedAt: time.Now(),
		Document:   doc,
		Findings:   found,
		Summary:    findings.Summarize(doc, found),
		Rows:       table.Build(found),
		Tree:       tree.Render(doc),
	}
}

// HasFindings reports whether the findings table has rows.
func (r *Result) HasFindings() bool { return len(r.Findings) > 0 }

// Title is the heading of the result.
func (r *Result) Title() string {
	if r.Operation.Name == "" {
		return "Results"
	}
	if r.Target.Kind == 0 {
		return r.Operation.Name
	}
	return r.Operation.Name + ": " + operation.Describe(r.Target)
}
