package view

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/tone"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/tree"
)

const indentUnit = "  "

// Terminal writes dashboard output as plain or colored text.
type Terminal struct {
	out     io.Writer
	palette map[tone.Tone]*color.Color
	bold    *color.Color
	faint   *color.Color
}

// NewTerminal creates a writer on out. Colors are emitted only when colored is set.
func NewTerminal(out io.Writer, colored bool) *Terminal {
	t := &Terminal{
		out: out,
		palette: map[tone.Tone]*color.Color{
			tone.Success: color.New(color.FgGreen),
			tone.Failure: color.New(color.FgRed),
			tone.Warning: color.New(color.FgYellow),
			tone.Info:    color.New(color.FgCyan),
			tone.Neutral: color.New(color.FgWhite),
		},
		bold:  color.New(color.Bold),
		faint: color.New(color.Faint),
	}
	for _, c := range t.colors() {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return t
}

func (t *Terminal) colors() []*color.Color {
	out := []*color.Color{t.bold, t.faint}
	for _, c := range t.palette {
		out = append(out, c)
	}
	return out
}

func (t *Terminal) paint(tn tone.Tone, s string) string {
	c, ok := t.palette[tn]
	if !ok {
		c = t.palette[tone.Neutral]
	}
	return c.Sprint(s)
}

// WritePanel writes the results area in its current state.
func (t *Terminal) WritePanel(p Panel) {
	switch p.Phase {
	case "loading":
		fmt.Fprintln(t.out, t.faint.Sprint(p.LoadingMessage()), p.Operation)
	case "error":
		fmt.Fprintln(t.out, t.paint(tone.Failure, p.ErrorTitle()))
		fmt.Fprintln(t.out, p.Message)
	case "ready":
		t.WriteResult(p.Result)
	default:
		fmt.Fprintln(t.out, t.faint.Sprint(p.IdleMessage()))
	}
}

// WriteResult writes the header, the findings table and the result tree.
func (t *Terminal) WriteResult(r *ResultView) {
	if r == nil {
		return
	}
	fmt.Fprintln(t.out, t.bold.Sprint(r.Title))
	if r.Repository != nil {
		fmt.Fprintln(t.out, t.faint.Sprint("Checkout: "+r.Repository.String()))
	}

	var tags []string
	if r.Summary.HasStatus() {
		tags = append(tags, t.paint(r.Summary.StatusTone, "Status: "+r.Summary.Status))
	}
	if r.Summary.HasTotalFiles() {
		tags = append(tags, t.paint(tone.Info, "Total Files Analyzed: "+r.Summary.TotalFiles))
	}
	if len(tags) > 0 {
		fmt.Fprintln(t.out, strings.Join(tags, "  "))
	}
	fmt.Fprintln(t.out)

	fmt.Fprintln(t.out, t.bold.Sprintf("Findings (%d)", len(r.Rows)))
	if r.HasFindings() {
		t.WriteTable(r)
	} else {
		fmt.Fprintln(t.out, t.faint.Sprint(r.NoFindingsMessage()))
	}

	for i, node := range r.Tree {
		fmt.Fprintln(t.out)
		fmt.Fprintln(t.out, t.bold.Sprintf("%d. %s", i+1, node.Label))
		t.writeValue(node, 1)
	}
}

type tableCell struct {
	text    string
	tone    tone.Tone
	painted bool
}

// WriteTable writes the findings table. Columns are padded before coloring so escape codes do
// not shift the alignment.
func (t *Terminal) WriteTable(r *ResultView) {
	rows := make([][]tableCell, 0, len(r.Rows)+1)

	header := make([]tableCell, len(r.Headers))
	for i, h := range r.Headers {
		header[i] = tableCell{text: h}
	}
	rows = append(rows, header)

	for _, row := range r.Rows {
		rows = append(rows, []tableCell{
			{text: fmt.Sprint(row.Number)},
			{text: oneLine(row.BugType)},
			{text: row.Severity, tone: row.SeverityTone, painted: true},
			{text: row.Line.Text, tone: tone.Info, painted: !row.Line.Placeholder},
			{text: oneLine(row.EvidenceView.Text)},
			{text: oneLine(row.ReasonView.Text)},
		})
	}

	widths := make([]int, len(header))
	for _, row := range rows {
		for i, c := range row {
			if i < len(widths) && utf8.RuneCountInString(c.text) > widths[i] {
				widths[i] = utf8.RuneCountInString(c.text)
			}
		}
	}

	for n, row := range rows {
		parts := make([]string, len(row))
		for i, c := range row {
			text := c.text
			if i < len(row)-1 {
				text += strings.Repeat(" ", widths[i]-utf8.RuneCountInString(c.text))
			}
			switch {
			case n == 0:
				text = t.bold.Sprint(text)
			case c.painted:
				text = t.paint(c.tone, text)
			}
			parts[i] = text
		}
		fmt.Fprintln(t.out, strings.Join(parts, "  "))
	}
}

// WriteTree writes nodes as an indented outline.
func (t *Terminal) WriteTree(nodes []tree.Node) {
	t.writeNodes(nodes, 0)
}

func (t *Terminal) writeNodes(nodes []tree.Node, depth int) {
	for _, n := range nodes {
		t.writeNode(n, depth)
	}
}

func (t *Terminal) writeNode(n tree.Node, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	switch n.Kind {
	case tree.KindList, tree.KindObject, tree.KindLongText:
		fmt.Fprintf(t.out, "%s%s:\n", indent, t.bold.Sprint(n.Label))
		t.writeValue(n, depth+1)
	default:
		fmt.Fprintf(t.out, "%s%s: %s\n", indent, t.bold.Sprint(n.Label), t.scalar(n))
	}
}

func (t *Terminal) writeValue(n tree.Node, depth int) {
	indent := strings.Repeat(indentUnit, depth)
	switch n.Kind {
	case tree.KindList:
		for _, item := range n.Items {
			if item.Composite {
				fmt.Fprintf(t.out, "%s-\n", indent)
				t.writeNodes(item.Children, depth+1)
				continue
			}
			fmt.Fprintf(t.out, "%s- %s\n", indent, item.Text)
		}
	case tree.KindObject:
		t.writeNodes(n.Children, depth)
	case tree.KindLongText:
		for _, line := range strings.Split(n.Value, "\n") {
			fmt.Fprintf(t.out, "%s%s\n", indent, line)
		}
	default:
		fmt.Fprintf(t.out, "%s%s\n", indent, t.scalar(n))
	}
}

func (t *Terminal) scalar(n tree.Node) string {
	switch n.Kind {
	case tree.KindPlain:
		return n.Value
	case tree.KindNull:
		return t.faint.Sprint(n.Value)
	default:
		return t.paint(n.Tone, n.Value)
	}
}

// oneLine keeps table rows on a single line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
