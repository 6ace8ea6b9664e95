package client

import (
	"net/http"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/document"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/errors"
)

// ErrorMessage extracts the message of a failed response: the body's "error" field, then its
// "message" field, then the HTTP status text.
func ErrorMessage(body []byte, statusCode int) string {
	if doc, err := document.ParseJSON(body); err == nil {
		for _, key := range []string{"error", "message"} {
			if msg := stringField(doc, key); msg != "" {
				return msg
			}
		}
	}
	if text := http.StatusText(statusCode); text != "" {
		return text
	}
	return errors.GenericMessage
}

// ApplicationError reports whether doc carries an explicit error status and returns its message.
func ApplicationError(doc document.Value) (string, bool) {
	if stringField(doc, "status") != "error" {
		return "", false
	}
	if msg := stringField(doc, "error"); msg != "" {
		return msg, true
	}
	return errors.GenericMessage, true
}

func stringField(doc document.Value, key string) string {
	v, ok := doc.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.AsString()
	return s
}
