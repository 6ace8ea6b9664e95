package inspect

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/document"
)

// readDocument parses a saved result. YAML is recognised by extension; other files are read
// as JSON first and as YAML when that fails.
func readDocument(path string) (document.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return document.Null(), err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return document.ParseYAML(data)
	case ".json":
		return document.ParseJSON(data)
	}

	doc, jsonErr := document.ParseJSON(data)
	if jsonErr == nil {
		return doc, nil
	}
	doc, yamlErr := document.ParseYAML(data)
	if yamlErr != nil {
		return document.Null(), fmt.Errorf("neither JSON (%v) nor YAML (%v)", jsonErr, yamlErr)
	}
	return doc, nil
}
