package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"framecast/internal/domain/dto"
	"framecast/internal/domain/entity"
	"framecast/internal/domain/model"
	"framecast/internal/presentation"
)

type stubBlobStore struct {
	blob *model.Blob
}

func (s *stubBlobStore) GetByHash(_ context.Context, _ string) (*model.Blob, error) {
	if s.blob == nil {
		return nil, entity.ErrNotFound
	}

	return s.blob, nil
}

func (s *stubBlobStore) CreateIfAbsent(_ context.Context, _ *model.Blob) error { return nil }

func (s *stubBlobStore) AttachAnalysis(_ context.Context, _, _, _ string,
	_ *model.Analysis, _ time.Time,
) error {
	return nil
}

func (s *stubBlobStore) List(_ context.Context) ([]model.Blob, error) { return nil, nil }
func (s *stubBlobStore) Delete(_ context.Context, _ string) error     { return nil }
func (s *stubBlobStore) DeleteAll(_ context.Context) (int64, error)   { return 0, nil }

type stubDeleter struct {
	found     bool
	deleteAll entity.DeleteAllResult
}

func (d *stubDeleter) DeleteBlob(_ context.Context, _ string) (bool, error) {
	return d.found, nil
}

func (d *stubDeleter) DeleteAll(_ context.Context) (entity.DeleteAllResult, error) {
	return d.deleteAll, nil
}

type stubEnricher struct {
	reanalyze entity.ReanalyzeResult
}

func (e *stubEnricher) Trigger(_ string) {}

func (e *stubEnricher) ReanalyzeAll(_ context.Context) (entity.ReanalyzeResult, error) {
	return e.reanalyze, nil
}

func TestHandleBlobGet(t *testing.T) {
	t.Parallel()

	h := NewBlobHandler(&stubBlobStore{blob: &model.Blob{
		ID:       "abc123",
		MimeType: "image/jpeg",
		Width:    1600,
	}}, &stubDeleter{}, &stubEnricher{})

	c, rec := sessionContext(http.MethodGet, "/blobs/abc123", "")
	c.SetParamNames(presentation.Sha256Param)
	c.SetParamValues("abc123")

	require.NoError(t, h.HandleGet(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var blob model.Blob
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &blob))
	require.Equal(t, "abc123", blob.ID)
}

func TestHandleBlobGet_NotFound(t *testing.T) {
	t.Parallel()

	h := NewBlobHandler(&stubBlobStore{}, &stubDeleter{}, &stubEnricher{})

	c, rec := sessionContext(http.MethodGet, "/blobs/ghost", "")
	c.SetParamNames(presentation.Sha256Param)
	c.SetParamValues("ghost")

	require.NoError(t, h.HandleGet(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleBlobDelete_NotFound(t *testing.T) {
	t.Parallel()

	h := NewBlobHandler(&stubBlobStore{}, &stubDeleter{found: false}, &stubEnricher{})

	c, rec := sessionContext(http.MethodDelete, "/blobs/ghost", "")
	c.SetParamNames(presentation.Sha256Param)
	c.SetParamValues("ghost")

	require.NoError(t, h.HandleDelete(c))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleDeleteAll_RequiresConfirmation(t *testing.T) {
	t.Parallel()

	h := NewBlobHandler(&stubBlobStore{}, &stubDeleter{}, &stubEnricher{})

	c, rec := sessionContext(http.MethodDelete, "/blobs", "")
	require.NoError(t, h.HandleDeleteAll(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = sessionContext(http.MethodDelete, "/blobs?confirm=yes", "")
	require.NoError(t, h.HandleDeleteAll(c))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleDeleteAll_ReturnsCounts(t *testing.T) {
	t.Parallel()

	h := NewBlobHandler(&stubBlobStore{},
		&stubDeleter{deleteAll: entity.DeleteAllResult{Blobs: 3, Variants: 5}}, &stubEnricher{})

	c, rec := sessionContext(http.MethodDelete, "/blobs?confirm=true", "")
	require.NoError(t, h.HandleDeleteAll(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.DeleteAllResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, int64(3), resp.Blobs)
	require.Equal(t, int64(5), resp.Variants)
}

func TestHandleReanalyze(t *testing.T) {
	t.Parallel()

	h := NewBlobHandler(&stubBlobStore{},
		&stubDeleter{}, &stubEnricher{reanalyze: entity.ReanalyzeResult{Analyzed: 2, Skipped: 1}})

	c, rec := sessionContext(http.MethodPost, "/blobs/reanalyze", "")
	require.NoError(t, h.HandleReanalyze(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp dto.ReanalyzeResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, 2, resp.Analyzed)
	require.Equal(t, 1, resp.Skipped)
}
