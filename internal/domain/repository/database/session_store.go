package database

import (
	"context"
	"time"

	"framecast/internal/domain/model"
)

// SessionStore persists local picker session records. Uniqueness per
// initiation context is a caller responsibility, not enforced here.
type SessionStore interface {
	Create(ctx context.Context, session *model.PickerSession) error
	GetByID(ctx context.Context, id string) (*model.PickerSession, error)

	// UpdatePollState records a poll outcome: the media-items flag and the
	// (possibly refined) polling cadence.
	UpdatePollState(ctx context.Context, id string, mediaItemsSet bool,
		pollIntervalMillis, pollTimeoutMillis int64) error

	Delete(ctx context.Context, id string) error

	// SweepExpired removes every session whose expiry precedes now and
	// returns the removal count.
	SweepExpired(ctx context.Context, now time.Time) (int64, error)
}
