package dto

import "framecast/internal/domain/model"

const (
	ResultStatusProcessed = "processed"
	ResultStatusDuplicate = "duplicate"
)

// ProcessingResult is the structured outcome reported by the external
// processing worker for one source.
type ProcessingResult struct {
	SourceID string        `json:"sourceId"`
	Status   string        `json:"status"`
	BlobHash string        `json:"blobHash,omitempty"`
	BlobData *BlobData     `json:"blobData,omitempty"`
	Colors   *model.Palette `json:"colorData,omitempty"`
	Variants []VariantJob  `json:"variants"`
}

// BlobData carries the worker-derived canonical attributes of the image.
type BlobData struct {
	StoragePath string      `json:"storagePath"`
	MimeType    string      `json:"mimeType"`
	Width       int         `json:"width"`
	Height      int         `json:"height"`
	Size        int64       `json:"size"`
	Exif        []model.Tag `json:"exif,omitempty"`
}

// VariantJob names one (device, layout) rendition the placement policy
// assigned upstream. The fan-out generator only executes these jobs.
type VariantJob struct {
	DeviceID string `json:"device"`
	Layout   string `json:"layout"`
}

// CompletionResponse is returned to the processing worker.
type CompletionResponse struct {
	Success bool `json:"success"`
}
