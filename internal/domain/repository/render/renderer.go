package render

import (
	"image"

	"framecast/internal/domain/entity"
)

// Renderer is the resize/crop capability contract. The algorithm internals
// are a black box; implementations return a rendition matched to the
// device's geometry, honoring its inter-image gap for composite layouts.
type Renderer interface {
	Render(src image.Image, device entity.Device, layout string) (entity.Rendition, error)
}
