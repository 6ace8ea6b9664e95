package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/export"
	"github.com/chandan24042001s/qa-mcp-dashboard/internal/files"
)

// ValidateOutput checks the output flags and returns the parsed format.
func ValidateOutput(o *OutputOptions) (export.Format, error) {
	format, err := export.ParseFormat(o.Format)
	if err != nil {
		return "", err
	}

	o.OutputPath = strings.TrimSpace(o.OutputPath)
	if o.OutputPath == "" {
		if format.Binary() {
			return "", fmt.Errorf("the 'output' flag is required for the %s format", format)
		}
		return format, nil
	}

	path, err := files.ExpandPath(o.OutputPath)
	if err != nil {
		return "", fmt.Errorf("failed to expand output path %q: %w", o.OutputPath, err)
	}
	if info, err := os.Stat(path); err == nil && !info.IsDir() && !info.Mode().IsRegular() {
		return "", fmt.Errorf("the output path %q is not a regular file or folder", o.OutputPath)
	}
	return format, nil
}
