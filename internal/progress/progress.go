// Package progress shows an indeterminate spinner on stderr while an analysis runs.
package progress

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"
)

// Indicator reports activity of a running operation.
type Indicator interface {
	Describe(description string)
	Done()
}

// New returns a spinner writing to stderr when enabled and stderr is a terminal. Otherwise it
// returns a no-op indicator.
func New(enabled bool, description string) Indicator {
	if enabled && IsInteractive(os.Stderr) {
		return NewSpinner(os.Stderr, description)
	}
	return NoOp{}
}

// IsInteractive reports whether f is attached to a terminal.
func IsInteractive(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// tick is the spinner animation period.
const tick = 100 * time.Millisecond

// Spinner is an Indicator backed by a progress bar of unknown length.
type Spinner struct {
	bar  *progressbar.ProgressBar
	stop chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

// NewSpinner starts a spinner on w.
func NewSpinner(w io.Writer, description string) *Spinner {
	bar := progressbar.NewOptions(-1,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription(description),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionShowElapsedTimeOnFinish(),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionThrottle(tick/2),
	)
	_ = bar.RenderBlank()

	s := &Spinner{bar: bar, stop: make(chan struct{})}
	s.wg.Add(1)
	go s.spin()
	return s
}

func (s *Spinner) spin() {
	defer s.wg.Done()
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			_ = s.bar.Add(1)
		}
	}
}

// Describe updates the description.
func (s *Spinner) Describe(description string) {
	s.bar.Describe(description)
}

// Done stops the spinner. It may be called more than once.
func (s *Spinner) Done() {
	s.once.Do(func() {
		close(s.stop)
		s.wg.Wait()
		_ = s.bar.Finish()
	})
}

// NoOp implements Indicator with no-op methods.
type NoOp struct{}

// Describe is a no-op
func (NoOp) Describe(_ string) {}

// Done is a no-op
func (NoOp) Done() {}
