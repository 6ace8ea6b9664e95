// Package client calls the analysis backend and turns its responses into documents.
package client

import (
	"context"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-hclog"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/config"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/document"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/errors"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/httpclient"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/operation"
)

// Caller runs one operation against the backend.
type Caller interface {
	Call(ctx context.Context, op operation.Operation, target operation.Resolved) (document.Value, error)
}

// Client talks to the backend under backend.url + backend.base_path.
type Client struct {
	http      *resty.Client
	baseURL   string
	logger    hclog.Logger
	requestID func() string
}

// Option customizes a Client.
type Option func(*Client)

// WithRequestIDs replaces the request id generator.
func WithRequestIDs(gen func() string) Option {
	return func(c *Client) { c.requestID = gen }
}

// New creates a backend client from the global configuration.
func New(cfg *config.Config, logger hclog.Logger, opts ...Option) *Client {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	c := &Client{
		http:      httpclient.New(logger, cfg),
		baseURL:   BaseURL(cfg.Backend),
		logger:    logger,
		requestID: operation.NewRequestID,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL joins the backend URL and base path.
func BaseURL(b config.Backend) string {
	return strings.TrimRight(b.URL, "/") + "/" + strings.Trim(b.BasePath, "/")
}

// Call posts the payload of op for target and returns the response document. Every failure is
// reported as a *errors.RequestError.
func (c *Client) Call(ctx context.Context, op operation.Operation, target operation.Resolved) (document.Value, error) {
	payload := operation.NewPayload(op, target, c.requestID())
	url := strings.TrimRight(c.baseURL, "/") + op.Endpoint

	c.logger.Debug("calling backend", "operation", op.ID, "url", url, "requestId", payload.RequestID)

	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetBody(payload).
		Post(url)
	if err != nil {
		c.logger.Error("backend call failed", "operation", op.ID, "error", err)
		return document.Null(), errors.NewRequestError(op.ID, 0, err.Error())
	}

	if resp.IsError() || resp.StatusCode() < http.StatusOK || resp.StatusCode() >= http.StatusMultipleChoices {
		msg := ErrorMessage(resp.Body(), resp.StatusCode())
		c.logger.Error("backend returned an error", "operation", op.ID, "status", resp.StatusCode(), "message", msg)
		return document.Null(), errors.NewRequestError(op.ID, resp.StatusCode(), msg)
	}

	doc, err := decodeBody(resp.Body())
	if err != nil {
		c.logger.Error("unreadable backend response", "operation", op.ID, "error", err)
		return document.Null(), errors.NewRequestError(op.ID, resp.StatusCode(), err.Error())
	}

	if msg, failed := ApplicationError(doc); failed {
		c.logger.Warn("backend reported an error status", "operation", op.ID, "message", msg)
		return document.Null(), errors.NewRequestError(op.ID, resp.StatusCode(), msg)
	}

	c.logger.Debug("backend call finished", "operation", op.ID, "status", resp.StatusCode())
	return doc, nil
}

func decodeBody(body []byte) (document.Value, error) {
	if len(strings.TrimSpace(string(body))) == 0 {
		return document.Null(), nil
	}
	return document.ParseJSON(body)
}
