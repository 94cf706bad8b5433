package usecase

import (
	"context"
	"errors"
	"sync"
	"time"

	"framecast/internal/application/usecase/abstraction"
	"framecast/internal/domain/entity"
	"framecast/pkg/logger"
)

type pollTask struct {
	cancel context.CancelFunc
}

// Poller runs one cancelable recurring timer per session. Ticks are
// strictly sequential: the next poll is scheduled only after the previous
// one returns, so status checks never overlap. A cadence change from the
// remote replaces the timer rather than mutating a live one.
type Poller struct {
	sessions abstraction.SessionManager

	mu    sync.Mutex
	tasks map[string]*pollTask
}

func NewPoller(sessions abstraction.SessionManager) *Poller {
	return &Poller{
		sessions: sessions,
		tasks:    make(map[string]*pollTask),
	}
}

// Start launches the polling loop for sessionID. A prior loop for the same
// session is stopped first.
func (p *Poller) Start(ctx context.Context, sessionID string, interval time.Duration) {
	p.Stop(sessionID)

	ctx, cancel := context.WithCancel(ctx)
	task := &pollTask{cancel: cancel}

	p.mu.Lock()
	p.tasks[sessionID] = task
	p.mu.Unlock()

	go p.run(ctx, task, sessionID, interval)
}

// Stop clears the session's timer. Safe to call for unknown sessions.
func (p *Poller) Stop(sessionID string) {
	p.mu.Lock()
	task, ok := p.tasks[sessionID]
	if ok {
		delete(p.tasks, sessionID)
	}
	p.mu.Unlock()

	if ok {
		task.cancel()
	}
}

func (p *Poller) finish(sessionID string, task *pollTask) {
	p.mu.Lock()
	if p.tasks[sessionID] == task {
		delete(p.tasks, sessionID)
	}
	p.mu.Unlock()

	task.cancel()
}

func (p *Poller) run(ctx context.Context, task *pollTask, sessionID string, interval time.Duration) {
	defer p.finish(sessionID, task)

	timer := time.NewTimer(interval)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case <-timer.C:
			res, err := p.sessions.Poll(ctx, sessionID)
			if err != nil {
				if errors.Is(err, entity.ErrNotFound) || ctx.Err() != nil {
					return
				}

				// Transient remote failure: keep the cadence, the expiry
				// deadline bounds how long this can repeat.
				logger.Warn("session poll failed", "session", sessionID, "err", err)
				timer.Reset(interval)

				continue
			}

			switch res.State {
			case entity.SessionExpired:
				logger.Info("session expired, polling stopped", "session", sessionID)

				return

			case entity.SessionSelected:
				if _, err := p.sessions.Ingest(ctx, sessionID); err != nil {
					logger.Error("selection ingest failed", "session", sessionID, "err", err)
				}

				return

			case entity.SessionPolling:
				if res.Reconfigured && res.PollIntervalMillis > 0 {
					next := time.Duration(res.PollIntervalMillis) * time.Millisecond
					if next != interval {
						logger.Info("poll cadence reconfigured",
							"session", sessionID, "interval", next.String())
						interval = next
						timer.Stop()
						timer = time.NewTimer(interval)

						continue
					}
				}
				timer.Reset(interval)
			}
		}
	}
}
