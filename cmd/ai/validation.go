package ai

import (
	"fmt"
	"strings"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/operation"
)

// validateAIArgs resolves the operation named by the single positional argument.
func validateAIArgs(args []string) (operation.Operation, error) {
	expected := strings.Join(operation.IDs(operation.GroupAI), ", ")
	if len(args) != 1 {
		return operation.Operation{}, fmt.Errorf("exactly one operation must be specified, expected one of: %s", expected)
	}

	op, err := operation.Lookup(args[0])
	if err != nil || op.Group != operation.GroupAI {
		return operation.Operation{}, fmt.Errorf("%q is not an AI analysis, expected one of: %s", args[0], expected)
	}
	return op, nil
}
