package banner

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPrint(t *testing.T) {
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	Print(&buf, "QA MCP Server Dashboard")

	out := buf.String()
	assert.Contains(t, out, "QA MCP Server Dashboard")
	assert.Contains(t, out, "════")
	assert.NotContains(t, out, "\x1b[")
}
