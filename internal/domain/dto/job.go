package dto

// ProcessingJob is the message dispatched to the external processing worker
// for one staged source image.
type ProcessingJob struct {
	SourceID    string `json:"sourceId"`
	StagingPath string `json:"stagingPath"`
	Filename    string `json:"filename"`
	MimeType    string `json:"mimeType"`
}
