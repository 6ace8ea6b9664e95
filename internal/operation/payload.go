package operation

import (
	"github.com/google/uuid"
)

// Args is the "args" member of a request body.
type Args struct {
	RepoURL string `json:"repoUrl,omitempty"`
	Branch  string `json:"branch,omitempty"`
	Path    string `json:"path,omitempty"`
}

// Payload is the JSON body posted to the backend.
type Payload struct {
	RequestID string `json:"requestId,omitempty"`
	Args      Args   `json:"args"`
}

// NewRequestID returns a fresh correlation token.
func NewRequestID() string {
	return "req-" + uuid.New().String()
}

// NewPayload builds the request body of op for target. A tech debt report on a local path is
// sent without a request id.
func NewPayload(op Operation, target Resolved, requestID string) Payload {
	p := Payload{}
	if target.IsPath() {
		p.Args = Args{Path: target.Path}
	} else {
		p.Args = Args{RepoURL: target.RepoURL, Branch: target.Branch}
	}

	if op.RequestID && !(op.ID == TechDebt && target.IsPath()) {
		p.RequestID = requestID
	}
	return p
}
