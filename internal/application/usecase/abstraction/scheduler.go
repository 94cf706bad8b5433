package abstraction

import (
	"context"
	"time"
)

// Scheduler owns the recurring poll timers, one per session.
type Scheduler interface {
	Start(ctx context.Context, sessionID string, interval time.Duration)
	Stop(sessionID string)
}
