package api

import (
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single API request.
type CallEvent struct {
	RequestID  string
	Method     string
	Path       string
	StatusCode int // 0 when the request never reached the server
	LatencyMs  int64
	Success    bool
}

// Observer receives events about API calls for logging and diagnostics.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes API call events to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs events to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = fmt.Sprintf("err:%d", event.StatusCode)
	}
	fmt.Fprintf(o.w, "[%s] api_call id=%s method=%s path=%s status=%d latency_ms=%d result=%s\n",
		ts, event.RequestID, event.Method, event.Path, event.StatusCode, event.LatencyMs, status)
}

// NoopObserver discards all events. Useful for tests.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}
