package main

import (
	"os"

	"github.com/chandan24042001s/qa-mcp-dashboard/cmd"
)

func main() {
	code := cmd.Execute()
	os.Exit(code)
}
