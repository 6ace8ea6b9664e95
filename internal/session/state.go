package session

import (
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/operation"
)

// Phase tags the display state.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseLoading
	PhaseError
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseReady:
		return "ready"
	default:
		return "idle"
	}
}

// Panel texts of the results area.
const (
	IdleMessage       = "No results yet"
	LoadingMessage    = "Processing..."
	ErrorTitle        = "Error Occurred"
	NoFindingsMessage = "No findings available"
)

// State is what the results panel shows. Only the constructors below build one, so a state is
// never loading and failed at once.
type State struct {
	phase   Phase
	op      operation.Operation
	message string
	result  *Result
}

// Idle is the state before any operation ran.
func Idle() State { return State{phase: PhaseIdle} }

// Loading is the state while op waits for the backend.
func Loading(op operation.Operation) State { return State{phase: PhaseLoading, op: op} }

// Failed is the state after op failed with message.
func Failed(op operation.Operation, message string) State {
	return State{phase: PhaseError, op: op, message: message}
}

// Ready is the state after a result arrived.
func Ready(r *Result) State { return State{phase: PhaseReady, op: r.Operation, result: r} }

// Phase returns the tag of the state.
func (s State) Phase() Phase { return s.phase }

// Operation is the operation the state belongs to. It is zero while idle.
func (s State) Operation() operation.Operation { return s.op }

// Message is the error message of a failed state.
func (s State) Message() string { return s.message }

// Result returns the result of a ready state.
func (s State) Result() (*Result, bool) { return s.result, s.phase == PhaseReady }
