package abstraction

import (
	"context"

	"framecast/internal/domain/entity"
	"framecast/internal/domain/model"
)

// SessionManager drives the picker session lifecycle:
// CREATED -> POLLING -> {SELECTED, EXPIRED}.
type SessionManager interface {
	Create(ctx context.Context, userID string) (*model.PickerSession, error)
	Poll(ctx context.Context, sessionID string) (entity.PollResult, error)
	Ingest(ctx context.Context, sessionID string) (entity.IngestResult, error)
	Delete(ctx context.Context, sessionID string) error
	SweepExpired(ctx context.Context) (int64, error)
}
