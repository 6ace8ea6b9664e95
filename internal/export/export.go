// Package export writes a result in the machine-readable formats offered by the CLI.
package export

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/git"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/session"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/view"
)

// Format names an output format.
type Format string

const (
	FormatText  Format = "text"
	FormatJSON  Format = "json"
	FormatHTML  Format = "html"
	FormatSARIF Format = "sarif"
	FormatXLSX  Format = "xlsx"
)

var formats = map[Format]bool{
	FormatText:  true,
	FormatJSON:  true,
	FormatHTML:  true,
	FormatSARIF: true,
	FormatXLSX:  true,
}

// Formats returns the supported format names.
func Formats() []string {
	out := make([]string, 0, len(formats))
	for f := range formats {
		out = append(out, string(f))
	}
	sort.Strings(out)
	return out
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(name)))
	if f == "" {
		return FormatText, nil
	}
	if !formats[f] {
		return "", fmt.Errorf("unsupported format %q, expected one of: %s", name, strings.Join(Formats(), ", "))
	}
	return f, nil
}

// Binary reports whether the format cannot be written to a terminal.
func (f Format) Binary() bool { return f == FormatXLSX }

// Options carry the settings shared by the writers.
type Options struct {
	Title      string
	Colored    bool
	Repository *git.RepositoryMetadata
	Version    string
}

// Write renders r in format f to w.
func Write(w io.Writer, f Format, r *session.Result, opts Options) error {
	switch f {
	case FormatText, "":
		rv := view.NewResultView(r, view.Expanded)
		rv.Repository = opts.Repository
		view.NewTerminal(w, opts.Colored).WriteResult(rv)
		return nil
	case FormatJSON:
		return WriteJSON(w, r)
	case FormatHTML:
		title := opts.Title
		if title == "" {
			title = r.Title()
		}
		return view.WriteReport(w, title, r, opts.Repository)
	case FormatSARIF:
		return WriteSARIF(w, r, opts)
	case FormatXLSX:
		return WriteXLSX(w, r)
	default:
		return fmt.Errorf("unsupported format %q", f)
	}
}
