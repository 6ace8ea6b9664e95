package view

import (
	"io"
	"time"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/git"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/operation"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/session"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/template"
)

// ReportPage is the data of a standalone HTML report.
type ReportPage struct {
	Title     string
	Generated time.Time
	Result    *ResultView
}

// DashboardPage is the data of the browser dashboard.
type DashboardPage struct {
	Title  string
	Tabs   []Tab
	Active operation.Group
	Target operation.Target
	Panel  Panel
	// Notice is a transient message, such as a refused submission.
	Notice string
}

// WriteReport renders r as a standalone HTML page with every cell expanded. repo is
// optional.
func WriteReport(w io.Writer, title string, r *session.Result, repo *git.RepositoryMetadata) error {
	rv := NewResultView(r, Expanded)
	rv.Repository = repo
	page := ReportPage{
		Title:     title,
		Generated: time.Now().UTC(),
		Result:    rv,
	}
	return template.Execute(w, template.ReportPage, page)
}
