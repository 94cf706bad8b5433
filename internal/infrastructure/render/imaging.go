package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"framecast/internal/domain/entity"
	"framecast/internal/domain/model"
)

const jpegQuality = 90

// Imaging renders device variants with the disintegration/imaging library.
// Composite layouts slice the source into vertical strips and fill each
// panel, separated by the device's configured gap.
type Imaging struct{}

func NewImaging() *Imaging {
	return &Imaging{}
}

func (r *Imaging) Render(src image.Image, device entity.Device, layout string) (entity.Rendition, error) {
	if device.Width <= 0 || device.Height <= 0 {
		return entity.Rendition{}, fmt.Errorf("device %s: invalid geometry %dx%d",
			device.ID, device.Width, device.Height)
	}

	panels, ok := panelCount(layout)
	if !ok {
		return entity.Rendition{}, fmt.Errorf("device %s: unknown layout %q", device.ID, layout)
	}

	canvas := r.compose(src, device, panels)

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, canvas, imaging.JPEG, imaging.JPEGQuality(jpegQuality)); err != nil {
		return entity.Rendition{}, fmt.Errorf("encode variant: %w", err)
	}

	return entity.Rendition{
		Data:   buf.Bytes(),
		Width:  device.Width,
		Height: device.Height,
	}, nil
}

func (r *Imaging) compose(src image.Image, device entity.Device, panels int) image.Image {
	if panels == 1 {
		return imaging.Fill(src, device.Width, device.Height, imaging.Center, imaging.Lanczos)
	}

	gap := device.GapPixels
	panelWidth := (device.Width - gap*(panels-1)) / panels

	canvas := imaging.New(device.Width, device.Height, color.NRGBA{A: 255})

	bounds := src.Bounds()
	stripWidth := bounds.Dx() / panels

	for i := 0; i < panels; i++ {
		// Last panel absorbs the integer-division remainder so the canvas
		// is covered edge to edge.
		width := panelWidth
		if i == panels-1 {
			width = device.Width - i*(panelWidth+gap)
		}

		strip := imaging.Crop(src, image.Rect(
			bounds.Min.X+i*stripWidth,
			bounds.Min.Y,
			bounds.Min.X+(i+1)*stripWidth,
			bounds.Max.Y,
		))
		panel := imaging.Fill(strip, width, device.Height, imaging.Center, imaging.Lanczos)
		canvas = imaging.Paste(canvas, panel, image.Pt(i*(panelWidth+gap), 0))
	}

	return canvas
}

func panelCount(layout string) (int, bool) {
	switch layout {
	case model.LayoutMonotych:
		return 1, true
	case model.LayoutDiptych:
		return 2, true
	case model.LayoutTriptych:
		return 3, true
	default:
		return 0, false
	}
}
