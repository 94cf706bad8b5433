package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"framecast/internal/domain/dto"
	"framecast/internal/domain/entity"
	"framecast/internal/domain/model"
	brokerRepo "framecast/internal/domain/repository/broker"
	"framecast/internal/domain/repository/database"
	minioRepo "framecast/internal/domain/repository/minio"
	pickerRepo "framecast/internal/domain/repository/picker"
	"framecast/pkg/logger"
	"framecast/pkg/utils"
)

const (
	// Defaults apply when the remote omits polling hints or sends values
	// that do not parse.
	DefaultPollIntervalMillis = 10_000
	DefaultPollTimeoutMillis  = 60_000

	// autoCloseSuffix asks the remote picker UI to close itself once the
	// user confirms a selection.
	autoCloseSuffix = "/autoclose"
)

// SessionManager implements the picker session state machine. The remote
// service owns expiry; locally the record only caches its view of the
// session and is removed once ingestion is dispatched.
type SessionManager struct {
	pickerClient pickerRepo.Client
	sessions     database.SessionStore
	sources      database.SourceStore
	uploader     minioRepo.Uploader
	publisher    brokerRepo.Publisher
}

func NewSessionManager(pickerClient pickerRepo.Client, sessions database.SessionStore,
	sources database.SourceStore, uploader minioRepo.Uploader, publisher brokerRepo.Publisher,
) *SessionManager {
	return &SessionManager{
		pickerClient: pickerClient,
		sessions:     sessions,
		sources:      sources,
		uploader:     uploader,
		publisher:    publisher,
	}
}

func (m *SessionManager) Create(ctx context.Context, userID string) (*model.PickerSession, error) {
	// Opportunistic cleanup; a failed sweep never blocks creation.
	if _, err := m.sessions.SweepExpired(ctx, time.Now()); err != nil {
		logger.Warn("expired session sweep failed", "err", err)
	}

	remote, err := m.pickerClient.CreateSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("remote session rejected: %w", err)
	}

	intervalMillis, timeoutMillis := pollingConfigMillis(remote.PollingConfig,
		DefaultPollIntervalMillis, DefaultPollTimeoutMillis)

	session := &model.PickerSession{
		ID:                 uuid.New().String(),
		RemoteID:           remote.ID,
		UserID:             userID,
		PickerURI:          remote.PickerURI + autoCloseSuffix,
		MediaItemsSet:      false,
		PollIntervalMillis: intervalMillis,
		PollTimeoutMillis:  timeoutMillis,
		ExpireTime:         remote.ExpireTime,
		CreatedAt:          time.Now(),
	}

	if err := m.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	logger.Info("picker session created",
		"session", session.ID, "remote", session.RemoteID, "expires", session.ExpireTime)

	return session, nil
}

func (m *SessionManager) Poll(ctx context.Context, sessionID string) (entity.PollResult, error) {
	session, err := m.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return entity.PollResult{}, err
	}

	// Expiry check takes precedence over every remote signal, including a
	// completed selection: past the deadline the remote may no longer
	// serve the media, so the session is never classified SELECTED.
	if session.Expired(time.Now()) {
		return entity.PollResult{State: entity.SessionExpired}, nil
	}

	status, err := m.pickerClient.GetSession(ctx, session.RemoteID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			// Remote reports the session gone.
			return entity.PollResult{State: entity.SessionExpired}, nil
		}

		return entity.PollResult{}, err
	}

	intervalMillis, timeoutMillis := pollingConfigMillis(status.PollingConfig,
		session.PollIntervalMillis, session.PollTimeoutMillis)
	reconfigured := intervalMillis != session.PollIntervalMillis ||
		timeoutMillis != session.PollTimeoutMillis

	if reconfigured || status.MediaItemsSet != session.MediaItemsSet {
		if err := m.sessions.UpdatePollState(ctx, sessionID,
			status.MediaItemsSet, intervalMillis, timeoutMillis); err != nil {
			return entity.PollResult{}, err
		}
	}

	state := entity.SessionPolling
	if status.MediaItemsSet {
		state = entity.SessionSelected
	}

	return entity.PollResult{
		State:              state,
		PollIntervalMillis: intervalMillis,
		PollTimeoutMillis:  timeoutMillis,
		Reconfigured:       reconfigured,
	}, nil
}

// Ingest lists the selected items, stages each original and dispatches a
// processing job per item. Item failures are counted, not fatal: one bad
// download never blocks the rest of the selection. The session record is
// deleted afterwards; the remote session self-expires.
func (m *SessionManager) Ingest(ctx context.Context, sessionID string) (entity.IngestResult, error) {
	session, err := m.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return entity.IngestResult{}, err
	}

	if session.Expired(time.Now()) {
		return entity.IngestResult{}, entity.ErrSessionExpired
	}

	items, err := m.pickerClient.ListMediaItems(ctx, session.RemoteID)
	if err != nil {
		return entity.IngestResult{}, err
	}

	var result entity.IngestResult
	for _, item := range items {
		if err := m.ingestItem(ctx, item); err != nil {
			logger.Error("selected item dispatch failed",
				"session", sessionID, "item", item.ID, "err", err)
			result.Failed++

			continue
		}
		result.Queued++
	}

	if err := m.sessions.Delete(ctx, sessionID); err != nil {
		logger.Warn("session cleanup failed", "session", sessionID, "err", err)
	}

	logger.Info("selection dispatched for processing",
		"session", sessionID, "queued", result.Queued, "failed", result.Failed)

	return result, nil
}

func (m *SessionManager) ingestItem(ctx context.Context, item dto.MediaItem) error {
	data, err := m.pickerClient.DownloadOriginal(ctx, item)
	if err != nil {
		return err
	}

	mime := mimetype.Detect(data).String()
	sourceID := uuid.New().String()
	stagingPath := "staging/" + sourceID + utils.GetExtensionFromMimeType(mime)

	source := &model.Source{
		ID:          sourceID,
		Status:      model.SourceStatusPending,
		Filename:    item.Filename,
		StagingPath: stagingPath,
		CreatedAt:   time.Now(),
	}
	if err := m.sources.Create(ctx, source); err != nil {
		return err
	}

	if _, err := m.uploader.Upload(ctx, stagingPath, mime, data); err != nil {
		return err
	}

	job, err := json.Marshal(dto.ProcessingJob{
		SourceID:    sourceID,
		StagingPath: stagingPath,
		Filename:    item.Filename,
		MimeType:    mime,
	})
	if err != nil {
		return err
	}

	return m.publisher.Publish(ctx, string(job))
}

func (m *SessionManager) Delete(ctx context.Context, sessionID string) error {
	return m.sessions.Delete(ctx, sessionID)
}

func (m *SessionManager) SweepExpired(ctx context.Context) (int64, error) {
	return m.sessions.SweepExpired(ctx, time.Now())
}

// pollingConfigMillis applies the remote's cadence hints over the current
// values. Absent or unparsable hints leave the current value unchanged.
func pollingConfigMillis(cfg *dto.PollingConfig, currentInterval, currentTimeout int64) (int64, int64) {
	interval, timeout := currentInterval, currentTimeout

	if cfg == nil {
		return interval, timeout
	}
	if ms, ok := dto.ParseDurationMillis(cfg.PollInterval); ok {
		interval = ms
	}
	if ms, ok := dto.ParseDurationMillis(cfg.TimeoutIn); ok {
		timeout = ms
	}

	return interval, timeout
}
