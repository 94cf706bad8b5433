package dto

// IngestResponse reports the dispatch outcome for a selection.
type IngestResponse struct {
	Queued int `json:"queued"`
	Failed int `json:"failed"`
}

// DeleteAllResponse carries exact bulk-removal counts back to the caller.
type DeleteAllResponse struct {
	Blobs    int64 `json:"blobs"`
	Variants int64 `json:"variants"`
}

// ReanalyzeResponse summarizes a batch re-analysis pass.
type ReanalyzeResponse struct {
	Analyzed int `json:"analyzed"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}
