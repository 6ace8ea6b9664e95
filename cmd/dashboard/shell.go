package dashboard

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/operation"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/progress"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/session"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/table"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/view"
)

// Menu entries.
const (
	itemQuit       = "Quit"
	itemBack       = "Back"
	itemToggle     = "Expand or collapse a cell"
	itemRepository = "Repository URL"
	itemPath       = "Local path"
)

// Shell is the interactive terminal dashboard: pick a tab, pick an operation, give a target,
// read the results panel.
type Shell struct {
	dashboard *session.Dashboard
	prompter  Prompter
	terminal  *view.Terminal
	out       io.Writer
	progress  bool
}

// NewShell creates a shell writing to out.
func NewShell(d *session.Dashboard, p Prompter, out io.Writer, colored, showProgress bool) *Shell {
	return &Shell{
		dashboard: d,
		prompter:  p,
		terminal:  view.NewTerminal(out, colored),
		out:       out,
		progress:  showProgress,
	}
}

// Run loops until the user quits.
func (s *Shell) Run(ctx context.Context) error {
	s.showPanel()
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		op, err := s.chooseOperation()
		if err == errQuit {
			return nil
		}
		if err != nil {
			return err
		}

		target, err := s.askTarget(op)
		if err == errQuit {
			return nil
		}
		if err != nil {
			return err
		}

		s.run(ctx, op, target)
		if err := s.resultActions(); err == errQuit {
			return nil
		} else if err != nil {
			return err
		}
	}
}

func (s *Shell) chooseOperation() (operation.Operation, error) {
	for {
		labels := make([]string, 0, len(operation.Groups)+1)
		for _, g := range operation.Groups {
			labels = append(labels, g.Label())
		}
		labels = append(labels, itemQuit)

		idx, err := s.prompter.Select("Select a tab", labels)
		if err != nil {
			return operation.Operation{}, err
		}
		if idx >= len(operation.Groups) {
			return operation.Operation{}, errQuit
		}

		ops := operation.InGroup(operation.Groups[idx])
		items := make([]string, 0, len(ops)+1)
		for _, op := range ops {
			items = append(items, fmt.Sprintf("%s - %s", op.Name, op.Description))
		}
		items = append(items, itemBack)

		opIdx, err := s.prompter.Select("Select an operation", items)
		if err != nil {
			return operation.Operation{}, err
		}
		if opIdx < len(ops) {
			return ops[opIdx], nil
		}
	}
}

// askTarget prompts for the target forms op accepts. Empty answers are passed on so the
// dashboard reports them like any other invalid input.
func (s *Shell) askTarget(op operation.Operation) (operation.Target, error) {
	useRepo := op.AcceptsKind(operation.AcceptsRepo)
	if op.Accepts == operation.AcceptsAny {
		idx, err := s.prompter.Select("Analyse", []string{itemRepository, itemPath})
		if err != nil {
			return operation.Target{}, err
		}
		useRepo = idx == 0
	}

	if useRepo {
		repo, err := s.prompter.Prompt(itemRepository, "")
		if err != nil {
			return operation.Target{}, err
		}
		branch, err := s.prompter.Prompt("Branch", operation.DefaultBranch)
		if err != nil {
			return operation.Target{}, err
		}
		return operation.Target{RepoURL: repo, Branch: branch}, nil
	}

	path, err := s.prompter.Prompt(itemPath, "")
	if err != nil {
		return operation.Target{}, err
	}
	return operation.Target{Path: path}, nil
}

func (s *Shell) run(ctx context.Context, op operation.Operation, target operation.Target) {
	indicator := progress.New(s.progress, session.LoadingMessage+" "+op.Name)
	_, err := s.dashboard.Run(ctx, op, target)
	indicator.Done()

	if session.IsBusy(err) {
		fmt.Fprintln(s.out, err)
		return
	}
	s.showPanel()
}

// resultActions offers to toggle truncated cells of the displayed result.
func (s *Shell) resultActions() error {
	for {
		result, ok := s.dashboard.Snapshot().Result()
		if !ok || !hasTruncatedCells(result.Rows) {
			return nil
		}

		idx, err := s.prompter.Select("Next", []string{itemToggle, itemBack})
		if err != nil {
			return err
		}
		if idx != 0 {
			return nil
		}

		row, col, err := s.askCell(len(result.Rows))
		if err == errQuit {
			return err
		}
		if err != nil {
			fmt.Fprintln(s.out, err)
			continue
		}
		s.dashboard.ToggleCell(row, col)
		s.showPanel()
	}
}

func (s *Shell) askCell(rows int) (int, table.Column, error) {
	answer, err := s.prompter.Prompt(fmt.Sprintf("Row (1-%d)", rows), "1")
	if err != nil {
		return 0, "", err
	}
	row, err := strconv.Atoi(strings.TrimSpace(answer))
	if err != nil || row < 1 || row > rows {
		return 0, "", fmt.Errorf("invalid row %q", answer)
	}

	idx, err := s.prompter.Select("Column", []string{"Evidence", "Reason"})
	if err != nil {
		return 0, "", err
	}
	if idx == 1 {
		return row, table.ColumnReason, nil
	}
	return row, table.ColumnEvidence, nil
}

func (s *Shell) showPanel() {
	fmt.Fprintln(s.out)
	s.terminal.WritePanel(view.NewPanel(s.dashboard.Snapshot(), s.dashboard.IsExpanded))
	fmt.Fprintln(s.out)
}

func hasTruncatedCells(rows []table.Row) bool {
	for _, r := range rows {
		if r.Evidence.Truncated || r.Reason.Truncated {
			return true
		}
	}
	return false
}
