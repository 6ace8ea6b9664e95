// Package server serves the browser dashboard.
package server

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/hashicorp/go-hclog"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/operation"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/session"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/table"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/template"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/view"
)

// Server renders the dashboard and runs operations submitted from it.
type Server struct {
	engine    *gin.Engine
	dashboard *session.Dashboard
	logger    hclog.Logger
	title     string

	// ctx bounds operations started from the browser; they outlive the request.
	ctx context.Context
	wg  sync.WaitGroup

	mu     sync.Mutex
	target operation.Target
}

// New builds the router. Operations started through it are cancelled with ctx.
func New(ctx context.Context, dashboard *session.Dashboard, logger hclog.Logger, title string) (*Server, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	tmpl, err := template.NewTemplate()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestID())
	r.Use(Logger(logger))
	r.SetHTMLTemplate(tmpl)

	s := &Server{
		engine:    r,
		dashboard: dashboard,
		logger:    logger,
		title:     title,
		ctx:       ctx,
		target:    operation.Target{Branch: operation.DefaultBranch},
	}

	r.GET("/healthz", s.health)
	r.GET("/", s.index)
	r.POST("/operations/:id", s.runOperation)
	r.POST("/results/cells/:row/:column/toggle", s.toggleCell)
	r.GET("/api/state", s.state)

	return s, nil
}

// Handler returns the HTTP handler of the dashboard.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Wait blocks until every operation started from the browser has finished.
func (s *Server) Wait() {
	s.wg.Wait()
}

// ToggleURL is the address of the expansion control of a findings cell.
func ToggleURL(row int, col table.Column) string {
	return fmt.Sprintf("/results/cells/%d/%s/toggle", row, url.PathEscape(string(col)))
}

// health handles GET /healthz
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// index handles GET /
func (s *Server) index(c *gin.Context) {
	s.render(c, http.StatusOK, s.activeGroup(c.Query("tab")), "")
}

// runOperation handles POST /operations/:id
func (s *Server) runOperation(c *gin.Context) {
	op, err := operation.Lookup(c.Param("id"))
	if err != nil {
		s.render(c, http.StatusNotFound, s.activeGroup(""), err.Error())
		return
	}

	target := operation.Target{
		RepoURL: c.PostForm("repoUrl"),
		Branch:  c.PostForm("branch"),
		Path:    c.PostForm("path"),
	}
	s.mu.Lock()
	s.target = target
	s.mu.Unlock()

	pending, err := s.dashboard.Begin(op, target)
	switch {
	case session.IsBusy(err):
		s.render(c, http.StatusConflict, op.Group, err.Error())
		return
	case err != nil:
		s.logger.Debug("operation rejected", "operation", op.ID, "error", err)
	default:
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			if _, err := pending.Run(s.ctx); err != nil {
				s.logger.Debug("operation failed", "operation", op.ID, "error", err)
			}
		}()
	}

	c.Redirect(http.StatusSeeOther, "/?tab="+url.QueryEscape(string(op.Group)))
}

// toggleCell handles POST /results/cells/:row/:column/toggle
func (s *Server) toggleCell(c *gin.Context) {
	row, err := strconv.Atoi(c.Param("row"))
	if err != nil || row < 1 {
		c.String(http.StatusBadRequest, "invalid row %q", c.Param("row"))
		return
	}
	col := table.Column(c.Param("column"))
	if col != table.ColumnEvidence && col != table.ColumnReason {
		c.String(http.StatusBadRequest, "invalid column %q", c.Param("column"))
		return
	}

	result, ok := s.dashboard.Snapshot().Result()
	if !ok || row > len(result.Rows) {
		c.String(http.StatusNotFound, "no such cell")
		return
	}

	s.dashboard.ToggleCell(row, col)
	c.Redirect(http.StatusSeeOther, "/?tab="+url.QueryEscape(string(result.Operation.Group)))
}

// state handles GET /api/state
func (s *Server) state(c *gin.Context) {
	st := s.dashboard.Snapshot()
	out := gin.H{
		"phase":     st.Phase().String(),
		"operation": st.Operation().ID,
	}
	switch st.Phase() {
	case session.PhaseError:
		out["message"] = st.Message()
	case session.PhaseReady:
		r, _ := st.Result()
		out["result"] = gin.H{
			"title":      r.Title(),
			"status":     r.Summary.Status,
			"totalFiles": r.Summary.TotalFiles,
			"findings":   r.Findings,
		}
	}

	busy := gin.H{}
	for _, g := range operation.Groups {
		if running, ok := s.dashboard.Busy(g); ok {
			busy[string(g)] = running
		}
	}
	out["busy"] = busy

	c.JSON(http.StatusOK, out)
}

func (s *Server) render(c *gin.Context, status int, active operation.Group, notice string) {
	s.mu.Lock()
	target := s.target
	s.mu.Unlock()

	panel := view.NewPanel(s.dashboard.Snapshot(), s.dashboard.IsExpanded)
	if panel.Result != nil {
		panel.Result.WithToggles(ToggleURL)
	}

	c.HTML(status, template.DashboardPage, view.DashboardPage{
		Title:  s.title,
		Tabs:   view.NewTabs(active, s.dashboard.Busy),
		Active: active,
		Target: target,
		Panel:  panel,
		Notice: notice,
	})
}

// activeGroup picks the tab to show: the requested one, else the group of the displayed
// operation, else the first tab.
func (s *Server) activeGroup(requested string) operation.Group {
	def := operation.Groups[0]
	if op := s.dashboard.Snapshot().Operation(); op.Group != "" {
		def = op.Group
	}
	return operation.ParseGroup(requested, def)
}
