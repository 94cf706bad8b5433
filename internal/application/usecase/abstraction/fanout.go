package abstraction

import (
	"context"

	"framecast/internal/domain/dto"
	"framecast/internal/domain/model"
)

// Fanout executes the (device, layout) rendition jobs for one blob.
type Fanout interface {
	Generate(ctx context.Context, blob *model.Blob, jobs []dto.VariantJob) error
}
