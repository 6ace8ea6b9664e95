package findings

import (
	"strings"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/document"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/tone"
)

// Summary holds the header tags shown above a result.
type Summary struct {
	Status       string    `json:"status,omitempty"`
	StatusTone   tone.Tone `json:"statusTone,omitempty"`
	TotalFiles   string    `json:"totalFiles,omitempty"`
	FindingCount int       `json:"findingCount"`
}

// HasStatus reports whether a status tag should be shown.
func (s Summary) HasStatus() bool { return s.Status != "" }

// HasTotalFiles reports whether a total files tag should be shown.
func (s Summary) HasTotalFiles() bool { return s.TotalFiles != "" }

// Summarize reads the reserved top-level fields of doc.
func Summarize(doc document.Value, found []Finding) Summary {
	s := Summary{FindingCount: len(found)}
	if doc.Kind() != document.KindObject {
		return s
	}

	for _, key := range []string{"status", "Status"} {
		if v, ok := doc.Get(key); ok {
			if str, ok := v.AsString(); ok && str != "" {
				s.Status = str
				s.StatusTone = StatusTone(str)
				break
			}
		}
	}

	for _, key := range []string{"totalFilesAnalyzed", "totalFiles"} {
		v, ok := doc.Get(key)
		if !ok {
			continue
		}
		if lit, ok := v.AsNumber(); ok {
			s.TotalFiles = lit
			break
		}
		if str, ok := v.AsString(); ok && str != "" {
			s.TotalFiles = str
			break
		}
	}
	return s
}

// StatusTone classifies a top-level status, ignoring case.
func StatusTone(status string) tone.Tone {
	switch strings.ToLower(status) {
	case "completed":
		return tone.Success
	case "error":
		return tone.Failure
	default:
		return tone.Warning
	}
}
