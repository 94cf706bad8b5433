package dto

import "time"

// SessionResponse is what the HTTP surface returns on session creation.
type SessionResponse struct {
	ID                 string    `json:"id"`
	PickerURI          string    `json:"pickerUri"`
	PollIntervalMillis int64     `json:"pollIntervalMs"`
	ExpireTime         time.Time `json:"expireTime"`
}

// PollResponse is the one-shot poll result for a session.
type PollResponse struct {
	State              string `json:"state"`
	PollIntervalMillis int64  `json:"pollIntervalMs,omitempty"`
}
