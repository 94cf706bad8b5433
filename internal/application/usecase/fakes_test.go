package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"framecast/internal/domain/dto"
	"framecast/internal/domain/entity"
	"framecast/internal/domain/model"
)

type fakeSessionStore struct {
	mu       sync.Mutex
	sessions map[string]*model.PickerSession
	swept    int64
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*model.PickerSession)}
}

func (s *fakeSessionStore) Create(_ context.Context, session *model.PickerSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *session
	s.sessions[session.ID] = &cp

	return nil
}

func (s *fakeSessionStore) GetByID(_ context.Context, id string) (*model.PickerSession, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	cp := *session

	return &cp, nil
}

func (s *fakeSessionStore) UpdatePollState(_ context.Context, id string, mediaItemsSet bool,
	pollIntervalMillis, pollTimeoutMillis int64,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return entity.ErrNotFound
	}
	session.MediaItemsSet = mediaItemsSet
	session.PollIntervalMillis = pollIntervalMillis
	session.PollTimeoutMillis = pollTimeoutMillis

	return nil
}

func (s *fakeSessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return entity.ErrNotFound
	}
	delete(s.sessions, id)

	return nil
}

func (s *fakeSessionStore) SweepExpired(_ context.Context, now time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for id, session := range s.sessions {
		if session.Expired(now) {
			delete(s.sessions, id)
			count++
		}
	}
	s.swept += count

	return count, nil
}

type completedSource struct {
	Status    string
	BlobHash  string
	Duplicate bool
}

type fakeSourceStore struct {
	mu        sync.Mutex
	sources   map[string]*model.Source
	completed map[string]completedSource
}

func newFakeSourceStore() *fakeSourceStore {
	return &fakeSourceStore{
		sources:   make(map[string]*model.Source),
		completed: make(map[string]completedSource),
	}
}

func (s *fakeSourceStore) Create(_ context.Context, source *model.Source) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *source
	s.sources[source.ID] = &cp

	return nil
}

func (s *fakeSourceStore) GetByID(_ context.Context, id string) (*model.Source, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	source, ok := s.sources[id]
	if !ok {
		return nil, entity.ErrNotFound
	}
	cp := *source

	return &cp, nil
}

func (s *fakeSourceStore) MarkCompleted(_ context.Context, id, status, blobHash string,
	duplicate bool, _ time.Time,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.completed[id] = completedSource{Status: status, BlobHash: blobHash, Duplicate: duplicate}

	return nil
}

type fakeBlobStore struct {
	mu       sync.Mutex
	blobs    map[string]*model.Blob
	attached map[string]*model.Analysis
}

func newFakeBlobStore() *fakeBlobStore {
	return &fakeBlobStore{
		blobs:    make(map[string]*model.Blob),
		attached: make(map[string]*model.Analysis),
	}
}

func (s *fakeBlobStore) GetByHash(_ context.Context, hash string) (*model.Blob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob, ok := s.blobs[hash]
	if !ok {
		return nil, entity.ErrNotFound
	}
	cp := *blob

	return &cp, nil
}

func (s *fakeBlobStore) CreateIfAbsent(_ context.Context, blob *model.Blob) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[blob.ID]; ok {
		return entity.ErrDuplicateContent
	}
	cp := *blob
	s.blobs[blob.ID] = &cp

	return nil
}

func (s *fakeBlobStore) AttachAnalysis(_ context.Context, hash, title, description string,
	analysis *model.Analysis, analyzedAt time.Time,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	blob, ok := s.blobs[hash]
	if !ok {
		return entity.ErrNotFound
	}
	blob.Title = title
	blob.Description = description
	blob.Analysis = analysis
	blob.AnalyzedAt = &analyzedAt
	s.attached[hash] = analysis

	return nil
}

func (s *fakeBlobStore) List(_ context.Context) ([]model.Blob, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Blob, 0, len(s.blobs))
	for _, blob := range s.blobs {
		out = append(out, *blob)
	}

	return out, nil
}

func (s *fakeBlobStore) Delete(_ context.Context, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.blobs[hash]; !ok {
		return entity.ErrNotFound
	}
	delete(s.blobs, hash)

	return nil
}

func (s *fakeBlobStore) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := int64(len(s.blobs))
	s.blobs = make(map[string]*model.Blob)

	return count, nil
}

func variantKey(deviceID, blobHash, layout string) string {
	return deviceID + "/" + blobHash + "/" + layout
}

type fakeVariantStore struct {
	mu       sync.Mutex
	variants map[string]*model.DeviceVariant
	upserts  int
}

func newFakeVariantStore() *fakeVariantStore {
	return &fakeVariantStore{variants: make(map[string]*model.DeviceVariant)}
}

func (s *fakeVariantStore) Upsert(_ context.Context, variant *model.DeviceVariant) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *variant
	s.variants[variantKey(variant.DeviceID, variant.BlobHash, variant.Layout)] = &cp
	s.upserts++

	return nil
}

func (s *fakeVariantStore) ListByBlob(_ context.Context, blobHash string) ([]model.DeviceVariant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.DeviceVariant
	for _, variant := range s.variants {
		if variant.BlobHash == blobHash {
			out = append(out, *variant)
		}
	}

	return out, nil
}

func (s *fakeVariantStore) List(_ context.Context) ([]model.DeviceVariant, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.DeviceVariant, 0, len(s.variants))
	for _, variant := range s.variants {
		out = append(out, *variant)
	}

	return out, nil
}

func (s *fakeVariantStore) DeleteByBlob(_ context.Context, blobHash string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for key, variant := range s.variants {
		if variant.BlobHash == blobHash {
			delete(s.variants, key)
			count++
		}
	}

	return count, nil
}

func (s *fakeVariantStore) DeleteAll(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := int64(len(s.variants))
	s.variants = make(map[string]*model.DeviceVariant)

	return count, nil
}

type fakeUploader struct {
	mu      sync.Mutex
	objects map[string][]byte
	err     error
}

func newFakeUploader() *fakeUploader {
	return &fakeUploader{objects: make(map[string][]byte)}
}

func (u *fakeUploader) Upload(_ context.Context, objectName, _ string, data []byte) (string, error) {
	if u.err != nil {
		return "", u.err
	}
	u.mu.Lock()
	defer u.mu.Unlock()
	u.objects[objectName] = data

	return objectName, nil
}

type fakeFetcher struct {
	objects map[string][]byte
	err     error
}

func (f *fakeFetcher) Fetch(_ context.Context, objectName string) ([]byte, error) {
	if f.err != nil {
		return nil, f.err
	}
	data, ok := f.objects[objectName]
	if !ok {
		return nil, entity.ErrNotFound
	}

	return data, nil
}

type fakeRemover struct {
	mu      sync.Mutex
	removed []string
	err     error
}

func (r *fakeRemover) Remove(_ context.Context, objectName string) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removed = append(r.removed, objectName)

	return nil
}

type fakePublisher struct {
	mu     sync.Mutex
	bodies []string
	err    error
}

func (p *fakePublisher) Publish(_ context.Context, body string) error {
	if p.err != nil {
		return p.err
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bodies = append(p.bodies, body)

	return nil
}

type fakePickerClient struct {
	createFunc   func(ctx context.Context) (*dto.RemoteSession, error)
	getFunc      func(ctx context.Context, remoteID string) (*dto.RemoteSessionStatus, error)
	listFunc     func(ctx context.Context, remoteID string) ([]dto.MediaItem, error)
	downloadFunc func(ctx context.Context, item dto.MediaItem) ([]byte, error)
}

func (c *fakePickerClient) CreateSession(ctx context.Context) (*dto.RemoteSession, error) {
	if c.createFunc == nil {
		return nil, entity.ErrNotFound
	}

	return c.createFunc(ctx)
}

func (c *fakePickerClient) GetSession(ctx context.Context, remoteID string) (*dto.RemoteSessionStatus, error) {
	if c.getFunc == nil {
		return nil, entity.ErrNotFound
	}

	return c.getFunc(ctx, remoteID)
}

func (c *fakePickerClient) ListMediaItems(ctx context.Context, remoteID string) ([]dto.MediaItem, error) {
	if c.listFunc == nil {
		return nil, nil
	}

	return c.listFunc(ctx, remoteID)
}

func (c *fakePickerClient) DownloadOriginal(ctx context.Context, item dto.MediaItem) ([]byte, error) {
	if c.downloadFunc == nil {
		return nil, entity.ErrNotFound
	}

	return c.downloadFunc(ctx, item)
}

func (c *fakePickerClient) DownloadSized(ctx context.Context, item dto.MediaItem, _, _ int) ([]byte, error) {
	return c.DownloadOriginal(ctx, item)
}

type fakeAnalyzer struct {
	mu       sync.Mutex
	calls    int
	analysis *model.Analysis
	err      error
}

func (a *fakeAnalyzer) Analyze(_ context.Context, _ []byte, _ string) (*model.Analysis, error) {
	a.mu.Lock()
	a.calls++
	a.mu.Unlock()
	if a.err != nil {
		return nil, a.err
	}

	return a.analysis, nil
}

type fakeRegistry struct {
	devices []entity.Device
	err     error
}

func (r *fakeRegistry) ListDevices(_ context.Context) ([]entity.Device, error) {
	if r.err != nil {
		return nil, r.err
	}

	return r.devices, nil
}

type fakeFanout struct {
	mu    sync.Mutex
	calls []fanoutCall
	err   error
}

type fanoutCall struct {
	BlobHash string
	Jobs     []dto.VariantJob
}

func (f *fakeFanout) Generate(_ context.Context, blob *model.Blob, jobs []dto.VariantJob) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fanoutCall{BlobHash: blob.ID, Jobs: jobs})

	return f.err
}

type fakeEnricher struct {
	mu        sync.Mutex
	triggered []string
}

func (e *fakeEnricher) Trigger(blobHash string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.triggered = append(e.triggered, blobHash)
}

func (e *fakeEnricher) ReanalyzeAll(_ context.Context) (entity.ReanalyzeResult, error) {
	return entity.ReanalyzeResult{}, nil
}

func (e *fakeEnricher) triggeredHashes() []string {
	e.mu.Lock()
	defer e.mu.Unlock()

	return append([]string(nil), e.triggered...)
}

type fakeSessionManager struct {
	mu       sync.Mutex
	polls    []entity.PollResult
	pollErr  error
	pollIdx  int
	ingested []string
}

func (m *fakeSessionManager) Create(_ context.Context, _ string) (*model.PickerSession, error) {
	return nil, fmt.Errorf("not implemented")
}

// Poll replays the scripted results, repeating the last one once exhausted.
func (m *fakeSessionManager) Poll(_ context.Context, _ string) (entity.PollResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.pollErr != nil {
		return entity.PollResult{}, m.pollErr
	}
	if len(m.polls) == 0 {
		return entity.PollResult{State: entity.SessionPolling}, nil
	}
	res := m.polls[m.pollIdx]
	if m.pollIdx < len(m.polls)-1 {
		m.pollIdx++
	}

	return res, nil
}

func (m *fakeSessionManager) Ingest(_ context.Context, sessionID string) (entity.IngestResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ingested = append(m.ingested, sessionID)

	return entity.IngestResult{}, nil
}

func (m *fakeSessionManager) ingestedSessions() []string {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]string(nil), m.ingested...)
}

func (m *fakeSessionManager) Delete(_ context.Context, _ string) error {
	return nil
}

func (m *fakeSessionManager) SweepExpired(_ context.Context) (int64, error) {
	return 0, nil
}
