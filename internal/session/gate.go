package session

import (
	"errors"
	"fmt"
	"sync"
)

// ErrBusy is matched by errors returned when an operation group already has a call in flight.
var ErrBusy = errors.New("another operation is in progress")

// BusyError names the operation that holds the gate.
type BusyError struct {
	Running string
}

func (e *BusyError) Error() string {
	return fmt.Sprintf("%s: %s", ErrBusy, e.Running)
}

// Is makes errors.Is(err, ErrBusy) hold.
func (e *BusyError) Is(target error) bool {
	return target == ErrBusy
}

// Gate serializes the operations of one group: Idle -> Running(op) -> Idle. A second Acquire
// while running is refused instead of queued.
type Gate struct {
	mu      sync.Mutex
	running string
}

// Acquire moves the gate to Running(opID), or returns a *BusyError when it is not idle.
func (g *Gate) Acquire(opID string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.running != "" {
		return &BusyError{Running: g.running}
	}
	g.running = opID
	return nil
}

// Release returns the gate to Idle.
func (g *Gate) Release() {
	g.mu.Lock()
	g.running = ""
	g.mu.Unlock()
}

// Running returns the operation holding the gate.
func (g *Gate) Running() (string, bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.running, g.running != ""
}
