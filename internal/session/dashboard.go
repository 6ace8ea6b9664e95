// Package session holds the dashboard state shared by the terminal and browser shells.
package session

import (
	"context"
	"errors"
	"sync"

	"github.com/hashicorp/go-hclog"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/client"
	qaerrors "github.com/chandan24042001s/qa-mcp-dashboard/internal/errors"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/operation"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/table"
)

// Dashboard owns one Gate per operation group and the state of the single results panel.
// It is safe for concurrent use.
type Dashboard struct {
	caller client.Caller
	logger hclog.Logger
	dedupe bool

	gates map[operation.Group]*Gate

	mu        sync.Mutex
	state     State
	expansion *table.Expansion
}

// NewDashboard creates an idle dashboard.
func NewDashboard(caller client.Caller, logger hclog.Logger, dedupe bool) *Dashboard {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	gates := make(map[operation.Group]*Gate, len(operation.Groups))
	for _, g := range operation.Groups {
		gates[g] = &Gate{}
	}
	return &Dashboard{
		caller:    caller,
		logger:    logger,
		dedupe:    dedupe,
		gates:     gates,
		state:     Idle(),
		expansion: table.NewExpansion(),
	}
}

// Pending is an operation that holds its group's gate and has not called the backend yet.
// Run must be called exactly once to release the gate.
type Pending struct {
	d      *Dashboard
	op     operation.Operation
	target operation.Resolved
	gate   *Gate
}

// Begin validates target and claims the group of op, putting the panel in the loading state.
//
// Invalid input puts the panel in the error state without claiming the group. A call refused
// because the group is busy returns an error matching ErrBusy and leaves the panel untouched.
func (d *Dashboard) Begin(op operation.Operation, target operation.Target) (*Pending, error) {
	resolved, err := target.Resolve(op)
	if err != nil {
		d.setState(Failed(op, qaerrors.Message(err)))
		return nil, err
	}

	gate := d.gate(op.Group)
	if err := gate.Acquire(op.ID); err != nil {
		d.logger.Warn("operation refused", "operation", op.ID, "error", err)
		return nil, err
	}

	d.setState(Loading(op))
	return &Pending{d: d, op: op, target: resolved, gate: gate}, nil
}

// Run calls the backend and replaces the panel with the outcome, then releases the group.
func (p *Pending) Run(ctx context.Context) (*Result, error) {
	defer p.gate.Release()

	d := p.d
	d.logger.Info("running operation", "operation", p.op.ID, "target", p.target.String())

	doc, err := d.caller.Call(ctx, p.op, p.target)
	if err != nil {
		d.setState(Failed(p.op, qaerrors.Message(err)))
		return nil, err
	}

	result := NewResult(p.op, p.target, doc, d.dedupe)
	d.setState(Ready(result))
	d.logger.Info("operation finished", "operation", p.op.ID, "findings", len(result.Findings))
	return result, nil
}

// Run executes op for target and replaces the panel with its outcome. It is Begin followed by
// Pending.Run.
func (d *Dashboard) Run(ctx context.Context, op operation.Operation, target operation.Target) (*Result, error) {
	pending, err := d.Begin(op, target)
	if err != nil {
		return nil, err
	}
	return pending.Run(ctx)
}

// Snapshot returns the current panel state.
func (d *Dashboard) Snapshot() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// Busy returns the operation running in group g.
func (d *Dashboard) Busy(g operation.Group) (string, bool) {
	return d.gate(g).Running()
}

// ToggleCell expands or collapses a findings table cell of the displayed result.
func (d *Dashboard) ToggleCell(row int, col table.Column) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.expansion.Toggle(row, col)
}

// CellText returns what a cell of the displayed result currently shows.
func (d *Dashboard) CellText(r table.Row, col table.Column) string {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.expansion.Text(r, col)
}

// IsExpanded reports whether a cell of the displayed result is expanded.
func (d *Dashboard) IsExpanded(row int, col table.Column) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.expansion.IsExpanded(row, col)
}

// Show displays a result obtained elsewhere, such as a saved document.
func (d *Dashboard) Show(r *Result) {
	d.setState(Ready(r))
}

func (d *Dashboard) setState(s State) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if s.phase != PhaseLoading {
		d.expansion.Reset()
	}
	d.state = s
}

func (d *Dashboard) gate(g operation.Group) *Gate {
	d.mu.Lock()
	defer d.mu.Unlock()
	gate, ok := d.gates[g]
	if !ok {
		gate = &Gate{}
		d.gates[g] = gate
	}
	return gate
}

// IsBusy reports whether err is a refusal because of an operation in flight.
func IsBusy(err error) bool {
	return errors.Is(err, ErrBusy)
}
