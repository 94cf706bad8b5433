package vision

import (
	"context"

	"framecast/internal/domain/model"
)

// Analyzer consumes the external vision capability. Responses are untrusted:
// implementations must schema-validate before returning, surfacing
// entity.ValidationError on structural mismatch.
type Analyzer interface {
	Analyze(ctx context.Context, data []byte, mimeType string) (*model.Analysis, error)
}
