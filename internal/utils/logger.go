package utils

import (
	"log"
	"strings"
)

// LogEvent writes one structured line per domain event. The message is a
// short summary; callers must not pass raw payloads, tokens or OTPs.
func LogEvent(requestID, module, action, message string) {
	rid := strings.TrimSpace(requestID)
	if rid == "" {
		rid = "-"
	}
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(module), action, rid, message)
}
