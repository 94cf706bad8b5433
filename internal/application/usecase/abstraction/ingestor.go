package abstraction

import (
	"context"

	"framecast/internal/domain/dto"
)

// Ingestor joins a processing-worker result back into the pipeline.
type Ingestor interface {
	Complete(ctx context.Context, result dto.ProcessingResult) error
}
