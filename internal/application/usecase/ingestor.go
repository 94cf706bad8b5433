package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"framecast/internal/application/usecase/abstraction"
	"framecast/internal/domain/dto"
	"framecast/internal/domain/entity"
	"framecast/internal/domain/model"
	"framecast/internal/domain/repository/database"
	"framecast/pkg/logger"
)

// Ingestor is the join point of the pipeline: it accepts a processing
// worker's result, settles the Source, establishes the Blob (dedup-aware),
// fires enrichment and runs variant fan-out.
type Ingestor struct {
	sources  database.SourceStore
	blobs    database.BlobStore
	fanout   abstraction.Fanout
	enricher abstraction.Enricher
	bucket   string
}

func NewIngestor(sources database.SourceStore, blobs database.BlobStore,
	fanout abstraction.Fanout, enricher abstraction.Enricher, bucket string,
) *Ingestor {
	return &Ingestor{
		sources:  sources,
		blobs:    blobs,
		fanout:   fanout,
		enricher: enricher,
		bucket:   bucket,
	}
}

func (i *Ingestor) Complete(ctx context.Context, result dto.ProcessingResult) error {
	if result.SourceID == "" {
		return &entity.ValidationError{Field: "sourceId", Reason: "missing"}
	}

	switch result.Status {
	case dto.ResultStatusDuplicate:
		// Dedup is a success path: the existing blob already has its
		// variants, so the source completes with no further work.
		return i.sources.MarkCompleted(ctx, result.SourceID,
			model.SourceStatusReady, result.BlobHash, true, time.Now())

	case dto.ResultStatusProcessed:
		return i.completeProcessed(ctx, result)

	default:
		return &entity.ValidationError{
			Field:  "status",
			Reason: fmt.Sprintf("unknown processing status %q", result.Status),
		}
	}
}

func (i *Ingestor) completeProcessed(ctx context.Context, result dto.ProcessingResult) error {
	if result.BlobHash == "" || result.BlobData == nil {
		if err := i.sources.MarkCompleted(ctx, result.SourceID,
			model.SourceStatusFailed, "", false, time.Now()); err != nil {
			logger.Error("source failure stamp failed", "source", result.SourceID, "err", err)
		}

		return &entity.ValidationError{Field: "blobData", Reason: "processed result missing blob attributes"}
	}

	blob := i.buildBlob(result)

	duplicate := false
	if err := i.blobs.CreateIfAbsent(ctx, blob); err != nil {
		if !errors.Is(err, entity.ErrDuplicateContent) {
			return err
		}
		// Lost a creation race or the worker re-reported known content;
		// either way the existing record is authoritative.
		duplicate = true
	}

	if err := i.sources.MarkCompleted(ctx, result.SourceID,
		model.SourceStatusReady, result.BlobHash, duplicate, time.Now()); err != nil {
		return err
	}

	if duplicate {
		return nil
	}

	// Enrichment is decoupled from this response: the caller gets its
	// success before analysis starts, and analysis failure never
	// propagates here.
	i.enricher.Trigger(result.BlobHash)

	if len(result.Variants) > 0 {
		if err := i.fanout.Generate(ctx, blob, result.Variants); err != nil {
			// Per-device failures were already collected independently;
			// the blob exists and re-running fan-out is a safe overwrite.
			logger.Error("variant fan-out incomplete", "blob", result.BlobHash, "err", err)
		}
	}

	logger.Info("ingestion completed",
		"source", result.SourceID, "blob", result.BlobHash, "variants", len(result.Variants))

	return nil
}

func (i *Ingestor) buildBlob(result dto.ProcessingResult) *model.Blob {
	data := result.BlobData

	aspect := 0.0
	if data.Height > 0 {
		aspect = float64(data.Width) / float64(data.Height)
	}

	return &model.Blob{
		ID:          result.BlobHash,
		Bucket:      i.bucket,
		StoragePath: data.StoragePath,
		Width:       data.Width,
		Height:      data.Height,
		AspectRatio: aspect,
		Orientation: model.OrientationFor(data.Width, data.Height),
		Size:        data.Size,
		MimeType:    data.MimeType,
		Exif:        data.Exif,
		Palette:     result.Colors,
		CreatedAt:   time.Now(),
	}
}
