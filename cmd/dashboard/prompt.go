package dashboard

import (
	"errors"
	"io"

	"github.com/manifoldco/promptui"
)

// errQuit ends the interactive session.
var errQuit = errors.New("quit")

// Prompter asks the user for choices and text.
type Prompter interface {
	Select(label string, items []string) (int, error)
	Prompt(label, def string) (string, error)
}

// promptuiPrompter implements Prompter on a terminal.
type promptuiPrompter struct {
	stdin  io.ReadCloser
	stdout io.WriteCloser
}

var selectTemplates = &promptui.SelectTemplates{
	Label:    "{{ . }}",
	Active:   "\U0001F449 {{ . | cyan }}",
	Inactive: "   {{ . | white }}",
	Selected: "\U00002705 {{ . | green }}",
}

func (p promptuiPrompter) Select(label string, items []string) (int, error) {
	s := promptui.Select{
		Label:     label,
		Items:     items,
		Templates: selectTemplates,
		Size:      len(items),
		Stdin:     p.stdin,
		Stdout:    p.stdout,
	}
	idx, _, err := s.Run()
	return idx, quitOn(err)
}

func (p promptuiPrompter) Prompt(label, def string) (string, error) {
	s := promptui.Prompt{
		Label:   label,
		Default: def,
		Stdin:   p.stdin,
		Stdout:  p.stdout,
	}
	value, err := s.Run()
	return value, quitOn(err)
}

// quitOn maps Ctrl+C and Ctrl+D to errQuit.
func quitOn(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return errQuit
	}
	return err
}
