package template

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/tone"
)

//go:embed templates/*.html
var templateFS embed.FS

// Page names.
const (
	ReportPage    = "report.html"
	DashboardPage = "dashboard.html"
)

// add adds two integers and returns the result.
// helper function for html template
func add(a, b int) int {
	return a + b
}

// generateSequence generates a slice of integers from 1 to n.
// helper function for html template
func generateSequence(n int) []int {
	var sequence []int
	for i := 1; i <= n; i++ {
		sequence = append(sequence, i)
	}
	return sequence
}

// ordinalDate returns a string with the ordinal number of the day
func ordinalDate(day int) string {
	suffix := "th"
	switch day {
	case 1, 21, 31:
		suffix = "st"
	case 2, 22:
		suffix = "nd"
	case 3, 23:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", day, suffix)
}

// formatDateTime formats a time.Time object into the specified string format.
// helper function for html template
func formatDateTime(t time.Time) string {
	day := ordinalDate(t.Day())
	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%s %s %d %d:%02d:%02d %s", day, t.Month(), t.Year(), hour, t.Minute(), t.Second(), t.Format("pm"))
}

// toneClass maps a tone to its CSS class.
// helper function for html template
func toneClass(t tone.Tone) string {
	if t == "" {
		return "tone-neutral"
	}
	return "tone-" + string(t)
}

// FuncMap returns the helpers available to every page.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"add":              add,
		"generateSequence": generateSequence,
		"formatDateTime":   formatDateTime,
		"toneClass":        toneClass,
		"upper":            strings.ToUpper,
	}
}

// NewTemplate parses the embedded pages.
func NewTemplate() (*template.Template, error) {
	return template.New("qadash").
		Funcs(FuncMap()).
		ParseFS(templateFS, "templates/*.html")
}

// Execute renders the named page into w.
func Execute(w io.Writer, name string, data interface{}) error {
	t, err := NewTemplate()
	if err != nil {
		return fmt.Errorf("failed to parse templates: %w", err)
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}
	return nil
}
