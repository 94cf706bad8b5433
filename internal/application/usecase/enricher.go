package usecase

import (
	"context"
	"time"

	"framecast/internal/domain/entity"
	"framecast/internal/domain/repository/database"
	minioRepo "framecast/internal/domain/repository/minio"
	visionRepo "framecast/internal/domain/repository/vision"
	"framecast/pkg/logger"
)

// Enricher attaches vision analysis to blobs. Trigger is fire-and-forget:
// ingestion never waits on it and never sees its failure. An unanalyzed
// blob is a recoverable state the batch path can always retry.
type Enricher struct {
	blobs    database.BlobStore
	fetcher  minioRepo.Fetcher
	analyzer visionRepo.Analyzer
	timeout  time.Duration
}

func NewEnricher(blobs database.BlobStore, fetcher minioRepo.Fetcher,
	analyzer visionRepo.Analyzer, timeoutMillis int64,
) *Enricher {
	return &Enricher{
		blobs:    blobs,
		fetcher:  fetcher,
		analyzer: analyzer,
		timeout:  time.Duration(timeoutMillis) * time.Millisecond,
	}
}

func (e *Enricher) Trigger(blobHash string) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("enrichment panicked", "blob", blobHash, "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), e.timeout)
		defer cancel()

		if err := e.analyze(ctx, blobHash); err != nil {
			logger.Error("enrichment failed, blob stays unanalyzed",
				"blob", blobHash, "err", err)
		}
	}()
}

// ReanalyzeAll walks every blob sequentially, submitting only the ones that
// carry no analysis yet. Already-analyzed blobs are never re-submitted.
func (e *Enricher) ReanalyzeAll(ctx context.Context) (entity.ReanalyzeResult, error) {
	blobs, err := e.blobs.List(ctx)
	if err != nil {
		return entity.ReanalyzeResult{}, err
	}

	var result entity.ReanalyzeResult
	for _, blob := range blobs {
		if blob.Analysis != nil {
			result.Skipped++

			continue
		}

		if err := e.analyze(ctx, blob.ID); err != nil {
			logger.Error("batch enrichment failed for blob", "blob", blob.ID, "err", err)
			result.Failed++

			continue
		}
		result.Analyzed++
	}

	logger.Info("batch re-analysis finished", "analyzed", result.Analyzed,
		"skipped", result.Skipped, "failed", result.Failed)

	return result, nil
}

func (e *Enricher) analyze(ctx context.Context, blobHash string) error {
	blob, err := e.blobs.GetByHash(ctx, blobHash)
	if err != nil {
		return err
	}

	data, err := e.fetcher.Fetch(ctx, blob.StoragePath)
	if err != nil {
		return err
	}

	analysis, err := e.analyzer.Analyze(ctx, data, blob.MimeType)
	if err != nil {
		return err
	}

	return e.blobs.AttachAnalysis(ctx, blobHash,
		analysis.Title, analysis.Description, analysis, time.Now())
}
