package utils

import (
	"log"
	"strings"
)

// LogEvent prints one line per gateway event, tagged with the request id so
// a single wizard run can be followed across its steps. Keep messages
// summarized; tokens and passenger details never belong in a log line.
func LogEvent(requestID, scope, action, message string) {
	req := strings.TrimSpace(requestID)
	log.Printf("[%s] action=%s request_id=%s msg=%s", strings.ToUpper(scope), action, req, message)
}

// LogUpstreamFailure records a failed upstream call in the same event
// stream, keyed by the operation that failed.
func LogUpstreamFailure(requestID, op string, err error) {
	LogEvent(requestID, "upstream", "call_failed", op+": "+err.Error())
}
