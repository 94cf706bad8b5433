package model

import "time"

// Blob is a content-addressed stored image. The SHA-256 of the canonical
// pixel bytes is the sole identity; repeated uploads of identical content
// collapse onto one record.
type Blob struct {
	ID          string     `bson:"_id" json:"sha256"`
	Bucket      string     `bson:"bucket" json:"bucket"`
	StoragePath string     `bson:"storage_path" json:"storagePath"`
	Width       int        `bson:"width" json:"width"`
	Height      int        `bson:"height" json:"height"`
	AspectRatio float64    `bson:"aspect_ratio" json:"aspectRatio"`
	Orientation string     `bson:"orientation" json:"orientation"`
	Size        int64      `bson:"size" json:"size"`
	MimeType    string     `bson:"mime_type" json:"mimeType"`
	Exif        []Tag      `bson:"exif" json:"exif,omitempty"`       // optional
	Palette     *Palette   `bson:"palette" json:"palette,omitempty"` // optional
	Title       string     `bson:"title" json:"title,omitempty"`
	Description string     `bson:"description" json:"description,omitempty"`
	Analysis    *Analysis  `bson:"analysis" json:"analysis,omitempty"`     // nil until enrichment runs
	AnalyzedAt  *time.Time `bson:"analyzed_at" json:"analyzedAt,omitempty"` // nil until enrichment runs
	CreatedAt   time.Time  `bson:"created_at" json:"createdAt"`
}

type Tag struct {
	Key   string `bson:"key" json:"key"`
	Value string `bson:"value" json:"value"`
}

// Palette is the worker-computed color summary of the source image.
type Palette struct {
	Dominant []string `bson:"dominant" json:"dominant"`
	Accent   []string `bson:"accent" json:"accent"`
}

const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
	OrientationSquare    = "square"
)

// OrientationFor derives the orientation classification from pixel geometry.
func OrientationFor(width, height int) string {
	switch {
	case width > height:
		return OrientationLandscape
	case height > width:
		return OrientationPortrait
	default:
		return OrientationSquare
	}
}
