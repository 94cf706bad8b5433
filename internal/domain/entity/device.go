package entity

import "time"

// Device is registry state referenced during fan-out, never persisted
// locally. The device registry service owns these records.
type Device struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Width       int       `json:"width"`
	Height      int       `json:"height"`
	Orientation string    `json:"orientation"`
	GapPixels   int       `json:"gapPixels"`
	LastSeen    time.Time `json:"lastSeen"`
}
