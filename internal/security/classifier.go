package security

import (
	"strings"

	md "github.com/JMURv/courseguard/internal/models"
)

// severities maps client-reported event types to a severity. The
// vocabulary is client-extensible, so anything unmatched falls back
// to info rather than being rejected.
var severities = map[string]md.Severity{
	"screen_capture_attempted":  md.SeverityCritical,
	"debugger_detected":         md.SeverityCritical,
	"devtools_opened":           md.SeverityWarning,
	"devtools_console_detected": md.SeverityWarning,
	"screenshot_attempt":        md.SeverityWarning,
	"print_screen_attempt":      md.SeverityWarning,
}

// Classify maps an event-type string to its severity,
// case-insensitively. Pure, no side effects.
func Classify(eventType string) md.Severity {
	if s, ok := severities[strings.ToLower(eventType)]; ok {
		return s
	}
	return md.SeverityInfo
}
