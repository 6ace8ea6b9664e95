package serve

import (
	"fmt"
	"strings"

	"github.com/chandan24042001s/qa-mcp-dashboard/internal/config"
)

// validateServeArgs returns the address to listen on: the flag when set, else the config.
func validateServeArgs(o *RunOptionsServe, cfg *config.Config) (string, error) {
	listen := strings.TrimSpace(o.Listen)
	if listen == "" {
		return cfg.Dashboard.Listen, nil
	}
	if err := config.ValidateDashboardConfig(&config.Dashboard{Listen: listen}); err != nil {
		return "", fmt.Errorf("the 'listen' flag is invalid: %w", err)
	}
	return listen, nil
}
