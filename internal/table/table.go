// Package table lays extracted findings out as numbered rows with truncated long cells.
package table

import (
	"strings"
	"unicode/utf8"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/findings"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/tone"
)

// Truncation limits, in characters, for the long columns.
const (
	EvidenceLimit = 100
	ReasonLimit   = 150
)

// Ellipsis is appended to a truncated preview.
const Ellipsis = "..."

// Column identifies an expandable column.
type Column string

const (
	ColumnEvidence Column = "evidence"
	ColumnReason   Column = "reason"
)

// Headers are the column titles, in display order.
var Headers = []string{"SR.No", "Bug Type", "Severity", "Line Number", "Evidence", "Reason"}

var severityTones = map[string]tone.Tone{
	"HIGH":   tone.Failure,
	"MEDIUM": tone.Warning,
	"LOW":    tone.Success,
}

// Cell is a text cell that may be shown truncated until it is expanded.
type Cell struct {
	Full      string `json:"full"`
	Preview   string `json:"preview"`
	Truncated bool   `json:"truncated"`
}

// Line is the line number cell.
type Line struct {
	Text        string `json:"text"`
	Placeholder bool   `json:"placeholder"`
}

// Row is one finding as displayed.
type Row struct {
	Number       int       `json:"number"`
	BugType      string    `json:"bugType"`
	Severity     string    `json:"severity"`
	SeverityTone tone.Tone `json:"severityTone"`
	Line         Line      `json:"line"`
	Evidence     Cell      `json:"evidence"`
	Reason       Cell      `json:"reason"`
}

// Build turns findings into rows numbered from 1 in sequence order.
func Build(found []findings.Finding) []Row {
	rows := make([]Row, 0, len(found))
	for i, f := range found {
		severity := strings.ToUpper(f.Severity)
		rows = append(rows, Row{
			Number:       i + 1,
			BugType:      f.BugType,
			Severity:     severity,
			SeverityTone: SeverityTone(severity),
			Line:         FormatLine(f.LineNumber),
			Evidence:     Truncate(f.Evidence, EvidenceLimit),
			Reason:       Truncate(f.Reason, ReasonLimit),
		})
	}
	return rows
}

// SeverityTone classifies an upper-cased severity.
func SeverityTone(severity string) tone.Tone {
	if t, ok := severityTones[severity]; ok {
		return t
	}
	return tone.Neutral
}

// FormatLine marks the placeholder line number so it is rendered in a muted style.
func FormatLine(line string) Line {
	if line == "" || line == findings.NotAvailable {
		return Line{Text: findings.NotAvailable, Placeholder: true}
	}
	return Line{Text: line}
}

// Truncate keeps text whole up to limit characters; longer text gets a preview of the
// first limit characters followed by an ellipsis.
func Truncate(text string, limit int) Cell {
	if utf8.RuneCountInString(text) <= limit {
		return Cell{Full: text, Preview: text}
	}
	runes := []rune(text)
	return Cell{
		Full:      text,
		Preview:   string(runes[:limit]) + Ellipsis,
		Truncated: true,
	}
}

// Cell returns the cell of the given column.
func (r Row) Cell(col Column) Cell {
	if col == ColumnReason {
		return r.Reason
	}
	return r.Evidence
}
