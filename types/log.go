package types

import "time"

// LogEntry is an audit record queued for asynchronous persistence.
type LogEntry struct {
	Method       string
	URL          string
	Actor        string
	RequestBody  string
	ResponseBody string
	StatusCode   int
	CreatedAt    time.Time
}
