package inspect

import (
	"fmt"
	"strings"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/files"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/operation"
)

// validateInspectArgs checks the document path and the optional operation.
func validateInspectArgs(o *RunOptionsInspect, args []string) (string, operation.Operation, error) {
	if len(args) != 1 {
		return "", operation.Operation{}, fmt.Errorf("exactly one document path must be specified")
	}

	path, err := files.ExpandPath(args[0])
	if err != nil {
		return "", operation.Operation{}, err
	}
	if err := files.ValidatePath(path); err != nil {
		return "", operation.Operation{}, err
	}

	if strings.TrimSpace(o.Operation) == "" {
		return path, operation.Operation{}, nil
	}
	op, err := operation.Lookup(o.Operation)
	if err != nil {
		return "", operation.Operation{}, err
	}
	return path, op, nil
}
