package entity

// SessionState is the caller-visible classification of a picker session.
type SessionState string

const (
	SessionPolling  SessionState = "polling"
	SessionSelected SessionState = "selected"
	SessionExpired  SessionState = "expired"
)

// PollResult is the outcome of one status check against the remote picker.
type PollResult struct {
	State              SessionState
	PollIntervalMillis int64
	PollTimeoutMillis  int64
	// Reconfigured is set when the remote advertised a polling cadence that
	// differs from the cached one; an active timer must be rescheduled.
	Reconfigured bool
}

// IngestResult reports how many selected items were dispatched for
// processing.
type IngestResult struct {
	Queued int
	Failed int
}

// DeleteAllResult carries the exact removal counts of a bulk delete.
type DeleteAllResult struct {
	Blobs    int64
	Variants int64
}

// ReanalyzeResult summarizes one batch re-analysis pass.
type ReanalyzeResult struct {
	Analyzed int
	Skipped  int
	Failed   int
}

// Rendition is one rendered device artifact produced by the resize
// capability.
type Rendition struct {
	Data   []byte
	Width  int
	Height int
}
