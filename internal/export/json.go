package export

import (
	"encoding/json"
	"io"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/document"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/findings"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/session"
)

// jsonResult is the JSON output of one result.
type jsonResult struct {
	Operation  string             `json:"operation"`
	Target     string             `json:"target,omitempty"`
	Status     string             `json:"status,omitempty"`
	TotalFiles string             `json:"totalFiles,omitempty"`
	Findings   []findings.Finding `json:"findings"`
	Document   document.Value     `json:"document"`
}

// WriteJSON writes the normalized findings next to the original document.
func WriteJSON(w io.Writer, r *session.Result) error {
	out := jsonResult{
		Operation:  r.Operation.ID,
		Status:     r.Summary.Status,
		TotalFiles: r.Summary.TotalFiles,
		Findings:   r.Findings,
		Document:   r.Document,
	}
	if r.Target.Kind != 0 {
		out.Target = r.Target.String()
	}
	if out.Findings == nil {
		out.Findings = []findings.Finding{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
