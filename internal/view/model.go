// Package view turns dashboard state into terminal text and HTML page data.
package view

import (
	"time"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/findings"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/git"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/operation"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/session"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/table"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/tree"
)

// ExpandedFunc reports whether a findings table cell is expanded.
type ExpandedFunc func(row int, col table.Column) bool

// Collapsed keeps every cell collapsed.
func Collapsed(int, table.Column) bool { return false }

// Expanded shows every cell in full.
func Expanded(int, table.Column) bool { return true }

// CellView is a findings table cell as displayed.
type CellView struct {
	Text       string
	Expandable bool
	Expanded   bool
	// Control is the label of the expansion control.
	Control string
	// ToggleURL is where the control posts to. Empty when the cell cannot be toggled.
	ToggleURL string
}

// RowView is a findings table row as displayed.
type RowView struct {
	table.Row
	EvidenceView CellView
	ReasonView   CellView
}

// ResultView is a ready result as displayed.
type ResultView struct {
	Title      string
	Operation  string
	Target     string
	ReceivedAt time.Time
	Summary    findings.Summary
	Headers    []string
	Rows       []RowView
	Tree       []tree.Node
	Repository *git.RepositoryMetadata
}

// HasFindings reports whether the findings table is shown.
func (r *ResultView) HasFindings() bool { return len(r.Rows) > 0 }

// NoFindingsMessage is shown instead of an empty findings table.
func (r *ResultView) NoFindingsMessage() string { return session.NoFindingsMessage }

// WithToggles sets the target of the expansion control of every truncated cell.
func (r *ResultView) WithToggles(url func(row int, col table.Column) string) *ResultView {
	for i := range r.Rows {
		row := &r.Rows[i]
		if row.EvidenceView.Expandable {
			row.EvidenceView.ToggleURL = url(row.Number, table.ColumnEvidence)
		}
		if row.ReasonView.Expandable {
			row.ReasonView.ToggleURL = url(row.Number, table.ColumnReason)
		}
	}
	return r
}

// Panel is the results area.
type Panel struct {
	Phase     string
	Operation string
	Message   string
	Result    *ResultView
}

// Texts of the panel states.
func (Panel) IdleMessage() string       { return session.IdleMessage }
func (Panel) LoadingMessage() string    { return session.LoadingMessage }
func (Panel) ErrorTitle() string        { return session.ErrorTitle }
func (Panel) NoFindingsMessage() string { return session.NoFindingsMessage }

// NewResultView builds the display of r.
func NewResultView(r *session.Result, expanded ExpandedFunc) *ResultView {
	if expanded == nil {
		expanded = Collapsed
	}
	rows := make([]RowView, 0, len(r.Rows))
	for _, row := range r.Rows {
		rows = append(rows, RowView{
			Row:          row,
			EvidenceView: cellView(row, table.ColumnEvidence, expanded(row.Number, table.ColumnEvidence)),
			ReasonView:   cellView(row, table.ColumnReason, expanded(row.Number, table.ColumnReason)),
		})
	}

	target := ""
	if r.Target.Kind != 0 {
		target = r.Target.String()
	}
	return &ResultView{
		Title:      r.Title(),
		Operation:  r.Operation.ID,
		Target:     target,
		ReceivedAt: r.ReceivedAt,
		Summary:    r.Summary,
		Headers:    table.Headers,
		Rows:       rows,
		Tree:       r.Tree,
	}
}

// NewPanel builds the results area for a dashboard state.
func NewPanel(state session.State, expanded ExpandedFunc) Panel {
	p := Panel{Phase: state.Phase().String(), Operation: state.Operation().Name}
	switch state.Phase() {
	case session.PhaseError:
		p.Message = state.Message()
	case session.PhaseReady:
		r, _ := state.Result()
		p.Result = NewResultView(r, expanded)
	}
	return p
}

func cellView(row table.Row, col table.Column, expanded bool) CellView {
	c := row.Cell(col)
	v := CellView{Text: c.Preview, Expandable: c.Truncated, Expanded: expanded && c.Truncated}
	if !c.Truncated || expanded {
		v.Text = c.Full
	}
	if c.Truncated {
		v.Control = ExpansionControl(col, v.Expanded)
	}
	return v
}

// ExpansionControl is the label of the control that toggles a cell.
func ExpansionControl(col table.Column, expanded bool) string {
	if expanded {
		return "Show less"
	}
	return "Show full " + string(col)
}

// Tab is one dashboard tab with its operations.
type Tab struct {
	Group      operation.Group
	Label      string
	Active     bool
	Operations []OperationView
}

// OperationView is one operation button.
type OperationView struct {
	operation.Operation
	AcceptsRepo bool
	AcceptsPath bool
	Running     bool
	// Disabled is set while any operation of the group is in flight.
	Disabled bool
}

// NewTabs lists the dashboard tabs with active marking the selected one. busy reports the
// operation running in a group.
func NewTabs(active operation.Group, busy func(operation.Group) (string, bool)) []Tab {
	tabs := make([]Tab, 0, len(operation.Groups))
	for _, g := range operation.Groups {
		running := ""
		if busy != nil {
			running, _ = busy(g)
		}
		tab := Tab{Group: g, Label: g.Label(), Active: g == active}
		for _, op := range operation.InGroup(g) {
			tab.Operations = append(tab.Operations, OperationView{
				Operation:   op,
				AcceptsRepo: op.AcceptsKind(operation.AcceptsRepo),
				AcceptsPath: op.AcceptsKind(operation.AcceptsPath),
				Running:     running == op.ID,
				Disabled:    running != "",
			})
		}
		tabs = append(tabs, tab)
	}
	return tabs
}
