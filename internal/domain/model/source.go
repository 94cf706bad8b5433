package model

import "time"

const (
	SourceStatusPending = "pending"
	SourceStatusReady   = "ready"
	SourceStatusFailed  = "failed"
)

// Source is one ingestion attempt. Distinct sources may resolve to the same
// blob via dedup; a deduplicated source still completes as ready with the
// Duplicate flag set so the outcome stays observable.
type Source struct {
	ID          string     `bson:"_id"`
	Status      string     `bson:"status"`
	BlobHash    string     `bson:"blob_hash"`
	Duplicate   bool       `bson:"duplicate"`
	Filename    string     `bson:"filename"`
	StagingPath string     `bson:"staging_path"`
	CreatedAt   time.Time  `bson:"created_at"`
	CompletedAt *time.Time `bson:"completed_at"`
}
