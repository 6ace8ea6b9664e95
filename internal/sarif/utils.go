package sarif

import (
	"strconv"
	"strings"
)

// parseLineRange parses line range from strings like "123" or "123-456".
// Returns (start, end) where end equals start for single line numbers.
func parseLineRange(value string) (int, int) {
	value = strings.TrimSpace(value)
	if strings.Contains(value, "-") {
		parts := strings.SplitN(value, "-", 2)
		if len(parts) == 2 {
			start, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
			end, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
			if err1 == nil && err2 == nil && start > 0 && end >= start {
				return start, end
			}
		}
	} else {
		if line, err := strconv.Atoi(value); err == nil && line > 0 {
			return line, line
		}
	}
	return 0, 0
}

// levelFromSeverity maps a finding severity to a SARIF level.
func levelFromSeverity(severity string) string {
	switch strings.ToUpper(strings.TrimSpace(severity)) {
	case "CRITICAL", "HIGH":
		return "error"
	case "MEDIUM":
		return "warning"
	case "LOW":
		return "note"
	default:
		return "none"
	}
}
