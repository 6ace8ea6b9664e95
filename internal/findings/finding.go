package findings

import (
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/document"
)

// NotAvailable is the placeholder used for every field missing from a raw finding.
const NotAvailable = "N/A"

// Finding is the normalized record of one detected issue.
type Finding struct {
	BugType    string `json:"bugType"`
	Severity   string `json:"severity"`
	LineNumber string `json:"lineNumber"`
	Evidence   string `json:"evidence"`
	Reason     string `json:"reason"`
}

// field aliases in lookup order
var (
	bugTypeFields    = []string{"type", "bugType"}
	severityFields   = []string{"severity"}
	lineNumberFields = []string{"line", "lineNumber"}
	evidenceFields   = []string{"evidence"}
	reasonFields     = []string{"reasoning", "reason"}
)

// Normalize turns one raw finding record into a Finding. Any value that is not an object
// yields a Finding made of placeholders only.
func Normalize(raw document.Value) Finding {
	return Finding{
		BugType:    firstPresent(raw, bugTypeFields),
		Severity:   firstPresent(raw, severityFields),
		LineNumber: firstPresent(raw, lineNumberFields),
		Evidence:   firstPresent(raw, evidenceFields),
		Reason:     firstPresent(raw, reasonFields),
	}
}

// firstPresent returns the text of the first truthy field among keys.
func firstPresent(raw document.Value, keys []string) string {
	for _, key := range keys {
		if v, ok := raw.Get(key); ok && v.Truthy() {
			return v.Text()
		}
	}
	return NotAvailable
}
