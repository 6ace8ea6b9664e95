package client

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/config"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/document"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/errors"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/operation"
)

type recorded struct {
	method string
	path   string
	body   string
}

func newBackend(t *testing.T, status int, body string) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		rec.method = r.Method
		rec.path = r.URL.Path
		rec.body = string(b)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func newClient(srvURL string) *Client {
	cfg := config.Default()
	cfg.Backend.URL = srvURL
	return New(cfg, nil, WithRequestIDs(func() string { return "req-fixed" }))
}

func lookup(t *testing.T, id string) operation.Operation {
	t.Helper()
	op, err := operation.Lookup(id)
	require.NoError(t, err)
	return op
}

func TestCallSendsPayload(t *testing.T) {
	srv, rec := newBackend(t, http.StatusOK, `{"status":"completed","findings":[]}`)
	c := newClient(srv.URL)

	target := operation.Resolved{Kind: operation.AcceptsRepo, RepoURL: "https://github.com/acme/shop", Branch: "main"}
	doc, err := c.Call(context.Background(), lookup(t, operation.ScanRepository), target)
	require.NoError(t, err)

	assert.Equal(t, http.MethodPost, rec.method)
	assert.Equal(t, "/call/scan/repository", rec.path)
	assert.JSONEq(t, `{"requestId":"req-fixed","args":{"repoUrl":"https://github.com/acme/shop","branch":"main"}}`, rec.body)
	assert.Equal(t, []string{"status", "findings"}, doc.Object().Keys())
}

func TestCallAIOnPath(t *testing.T) {
	srv, rec := newBackend(t, http.StatusOK, `{"insights":[]}`)
	c := newClient(srv.URL)

	target := operation.Resolved{Kind: operation.AcceptsPath, Path: "/src/shop"}
	_, err := c.Call(context.Background(), lookup(t, operation.CodeInsights), target)
	require.NoError(t, err)

	assert.Equal(t, "/call/ai/code_insights", rec.path)
	assert.JSONEq(t, `{"args":{"path":"/src/shop"}}`, rec.body)
}

func TestCallErrors(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantMsg    string
		wantStatus int
	}{
		{"error field", http.StatusInternalServerError, `{"error":"clone failed","message":"ignored"}`, "clone failed", 500},
		{"message field", http.StatusBadRequest, `{"message":"bad branch"}`, "bad branch", 400},
		{"status text", http.StatusBadGateway, `<html>oops</html>`, "Bad Gateway", 502},
		{"non string error field", http.StatusNotFound, `{"error":{"code":1}}`, "Not Found", 404},
		{"application error", http.StatusOK, `{"status":"error","error":"repository not found"}`, "repository not found", 200},
		{"application error without message", http.StatusOK, `{"status":"error"}`, errors.GenericMessage, 200},
		{"unparsable body", http.StatusOK, `{"status":`, "invalid JSON document", 200},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newBackend(t, tt.status, tt.body)
			c := newClient(srv.URL)

			target := operation.Resolved{Kind: operation.AcceptsPath, Path: "/src"}
			_, err := c.Call(context.Background(), lookup(t, operation.TechDebt), target)
			require.Error(t, err)

			var reqErr *errors.RequestError
			require.ErrorAs(t, err, &reqErr)
			assert.Equal(t, operation.TechDebt, reqErr.Operation)
			assert.Equal(t, tt.wantStatus, reqErr.StatusCode)
			assert.Contains(t, reqErr.Message, tt.wantMsg)
		})
	}
}

func TestCallStatusIsCaseSensitiveForErrors(t *testing.T) {
	srv, _ := newBackend(t, http.StatusOK, `{"status":"Error","findings":[]}`)
	c := newClient(srv.URL)

	doc, err := c.Call(context.Background(), lookup(t, operation.RunTests), operation.Resolved{Kind: operation.AcceptsPath, Path: "/t"})
	require.NoError(t, err)
	assert.Equal(t, document.KindObject, doc.Kind())
}

func TestCallEmptyBody(t *testing.T) {
	srv, _ := newBackend(t, http.StatusOK, "")
	c := newClient(srv.URL)

	doc, err := c.Call(context.Background(), lookup(t, operation.RunTests), operation.Resolved{Kind: operation.AcceptsPath, Path: "/t"})
	require.NoError(t, err)
	assert.True(t, doc.IsNull())
}

func TestCallTransportFailure(t *testing.T) {
	srv, _ := newBackend(t, http.StatusOK, `{}`)
	url := srv.URL
	srv.Close()

	c := newClient(url)
	_, err := c.Call(context.Background(), lookup(t, operation.RunTests), operation.Resolved{Kind: operation.AcceptsPath, Path: "/t"})

	var reqErr *errors.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, 0, reqErr.StatusCode)
	assert.NotEmpty(t, reqErr.Message)
}

func TestCallHonoursContext(t *testing.T) {
	srv, _ := newBackend(t, http.StatusOK, `{}`)
	c := newClient(srv.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.Call(ctx, lookup(t, operation.RunTests), operation.Resolved{Kind: operation.AcceptsPath, Path: "/t"})
	assert.Error(t, err)
}

func TestBaseURL(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/call", BaseURL(config.Backend{URL: "http://localhost:8080/", BasePath: "/call"}))
	assert.Equal(t, "https://qa.example.com/api/call", BaseURL(config.Backend{URL: "https://qa.example.com", BasePath: "api/call/"}))
}
