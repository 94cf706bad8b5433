package model

import "time"

const (
	LayoutMonotych = "monotych"
	LayoutDiptych  = "diptych"
	LayoutTriptych = "triptych"
)

// DeviceVariant is a rendered, device-geometry-specific derivative of a
// blob. At most one variant is authoritative per (device, blob, layout);
// re-processing overwrites in place.
type DeviceVariant struct {
	DeviceID    string    `bson:"device_id"`
	BlobHash    string    `bson:"blob_hash"`
	Layout      string    `bson:"layout"`
	Width       int       `bson:"width"`
	Height      int       `bson:"height"`
	Orientation string    `bson:"orientation"`
	StoragePath string    `bson:"storage_path"`
	Size        int64     `bson:"size"`
	RenderedAt  time.Time `bson:"rendered_at"`
}

// ValidLayout reports whether l is one of the closed set of composite
// layouts.
func ValidLayout(l string) bool {
	switch l {
	case LayoutMonotych, LayoutDiptych, LayoutTriptych:
		return true
	default:
		return false
	}
}
