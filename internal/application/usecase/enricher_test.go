package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"framecast/internal/domain/model"
)

func seedBlob(t *testing.T, blobs *fakeBlobStore, hash, storagePath string) {
	t.Helper()
	require.NoError(t, blobs.CreateIfAbsent(context.Background(), &model.Blob{
		ID:          hash,
		StoragePath: storagePath,
		MimeType:    "image/jpeg",
	}))
}

func TestTrigger_AttachesAnalysis(t *testing.T) {
	t.Parallel()

	blobs := newFakeBlobStore()
	seedBlob(t, blobs, "abc123", "photos/abc123.jpg")

	fetcher := &fakeFetcher{objects: map[string][]byte{"photos/abc123.jpg": []byte("jpeg")}}
	analyzer := &fakeAnalyzer{analysis: &model.Analysis{
		Title:       "Harbor at dusk",
		Description: "Boats under an orange sky.",
	}}

	enricher := NewEnricher(blobs, fetcher, analyzer, 5000)
	enricher.Trigger("abc123")

	require.Eventually(t, func() bool {
		blobs.mu.Lock()
		defer blobs.mu.Unlock()

		return blobs.attached["abc123"] != nil
	}, time.Second, 5*time.Millisecond)

	blob, err := blobs.GetByHash(context.Background(), "abc123")
	require.NoError(t, err)
	require.Equal(t, "Harbor at dusk", blob.Title)
	require.NotNil(t, blob.AnalyzedAt)
}

func TestTrigger_FailureLeavesBlobUnanalyzed(t *testing.T) {
	t.Parallel()

	blobs := newFakeBlobStore()
	seedBlob(t, blobs, "abc123", "photos/abc123.jpg")

	fetcher := &fakeFetcher{objects: map[string][]byte{"photos/abc123.jpg": []byte("jpeg")}}
	analyzer := &fakeAnalyzer{err: errors.New("model overloaded")}

	enricher := NewEnricher(blobs, fetcher, analyzer, 5000)
	enricher.Trigger("abc123")

	require.Eventually(t, func() bool {
		analyzer.mu.Lock()
		defer analyzer.mu.Unlock()

		return analyzer.calls == 1
	}, time.Second, 5*time.Millisecond)

	blob, err := blobs.GetByHash(context.Background(), "abc123")
	require.NoError(t, err)
	require.Nil(t, blob.Analysis)
	require.Nil(t, blob.AnalyzedAt)
}

func TestReanalyzeAll(t *testing.T) {
	t.Parallel()

	blobs := newFakeBlobStore()
	seedBlob(t, blobs, "aaa", "photos/aaa.jpg")
	seedBlob(t, blobs, "bbb", "photos/bbb.jpg")
	seedBlob(t, blobs, "ccc", "photos/ccc.jpg")

	// ccc already carries an analysis and must be skipped.
	require.NoError(t, blobs.AttachAnalysis(context.Background(), "ccc",
		"t", "d", &model.Analysis{Title: "t", Description: "d"}, time.Now()))

	// bbb's object is missing, so its analysis fails.
	fetcher := &fakeFetcher{objects: map[string][]byte{"photos/aaa.jpg": []byte("jpeg")}}
	analyzer := &fakeAnalyzer{analysis: &model.Analysis{Title: "t", Description: "d"}}

	enricher := NewEnricher(blobs, fetcher, analyzer, 5000)

	res, err := enricher.ReanalyzeAll(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, res.Analyzed)
	require.Equal(t, 1, res.Skipped)
	require.Equal(t, 1, res.Failed)

	blob, err := blobs.GetByHash(context.Background(), "aaa")
	require.NoError(t, err)
	require.NotNil(t, blob.Analysis)
}
