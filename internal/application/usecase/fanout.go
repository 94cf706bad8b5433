package usecase

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"sync"
	"time"

	// Decoders for the source formats the worker stores.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"framecast/internal/domain/dto"
	"framecast/internal/domain/entity"
	"framecast/internal/domain/model"
	"framecast/internal/domain/repository/database"
	devicesRepo "framecast/internal/domain/repository/devices"
	minioRepo "framecast/internal/domain/repository/minio"
	renderRepo "framecast/internal/domain/repository/render"
	"framecast/pkg/logger"
)

// Fanout turns one blob into N device renditions. Devices are independent:
// every job is attempted, failures are collected per device and returned as
// one aggregate that keeps each device's context.
type Fanout struct {
	registry devicesRepo.Registry
	renderer renderRepo.Renderer
	fetcher  minioRepo.Fetcher
	uploader minioRepo.Uploader
	variants database.VariantStore
}

func NewFanout(registry devicesRepo.Registry, renderer renderRepo.Renderer,
	fetcher minioRepo.Fetcher, uploader minioRepo.Uploader, variants database.VariantStore,
) *Fanout {
	return &Fanout{
		registry: registry,
		renderer: renderer,
		fetcher:  fetcher,
		uploader: uploader,
		variants: variants,
	}
}

func (f *Fanout) Generate(ctx context.Context, blob *model.Blob, jobs []dto.VariantJob) error {
	if len(jobs) == 0 {
		return nil
	}

	data, err := f.fetcher.Fetch(ctx, blob.StoragePath)
	if err != nil {
		return fmt.Errorf("fetch source for fan-out: %w", err)
	}

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decode source %s: %w", blob.ID, err)
	}

	devices, err := f.registry.ListDevices(ctx)
	if err != nil {
		return fmt.Errorf("device roster: %w", err)
	}
	roster := make(map[string]entity.Device, len(devices))
	for _, d := range devices {
		roster[d.ID] = d
	}

	// No ordering guarantee across devices; each job runs on its own and
	// records its own failure.
	errs := make([]error, len(jobs))
	var wg sync.WaitGroup
	for idx, job := range jobs {
		wg.Add(1)
		go func(idx int, job dto.VariantJob) {
			defer wg.Done()
			errs[idx] = f.renderOne(ctx, blob, roster, src, job)
		}(idx, job)
	}
	wg.Wait()

	return errors.Join(errs...)
}

func (f *Fanout) renderOne(ctx context.Context, blob *model.Blob,
	roster map[string]entity.Device, src image.Image, job dto.VariantJob,
) error {
	if !model.ValidLayout(job.Layout) {
		return fmt.Errorf("device %s: unknown layout %q", job.DeviceID, job.Layout)
	}

	device, ok := roster[job.DeviceID]
	if !ok {
		return fmt.Errorf("device %s: not registered", job.DeviceID)
	}

	rendition, err := f.renderer.Render(src, device, job.Layout)
	if err != nil {
		return fmt.Errorf("device %s: render %s: %w", device.ID, job.Layout, err)
	}

	// Deterministic path keyed by (device, blob, layout): re-renders
	// overwrite the prior artifact instead of accumulating.
	objectName := fmt.Sprintf("variants/%s/%s-%s.jpg", device.ID, blob.ID, job.Layout)
	storagePath, err := f.uploader.Upload(ctx, objectName, "image/jpeg", rendition.Data)
	if err != nil {
		return fmt.Errorf("device %s: store %s: %w", device.ID, job.Layout, err)
	}

	variant := &model.DeviceVariant{
		DeviceID:    device.ID,
		BlobHash:    blob.ID,
		Layout:      job.Layout,
		Width:       rendition.Width,
		Height:      rendition.Height,
		Orientation: model.OrientationFor(rendition.Width, rendition.Height),
		StoragePath: storagePath,
		Size:        int64(len(rendition.Data)),
		RenderedAt:  time.Now(),
	}
	if err := f.variants.Upsert(ctx, variant); err != nil {
		return fmt.Errorf("device %s: record %s: %w", device.ID, job.Layout, err)
	}

	logger.Debug("variant rendered",
		"device", device.ID, "blob", blob.ID, "layout", job.Layout)

	return nil
}
