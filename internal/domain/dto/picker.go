package dto

import "time"

// RemoteSession is the remote picker service's session resource.
type RemoteSession struct {
	ID            string         `json:"id"`
	PickerURI     string         `json:"pickerUri"`
	PollingConfig *PollingConfig `json:"pollingConfig,omitempty"`
	ExpireTime    time.Time      `json:"expireTime"`
}

// RemoteSessionStatus is one poll response.
type RemoteSessionStatus struct {
	MediaItemsSet bool           `json:"mediaItemsSet"`
	PollingConfig *PollingConfig `json:"pollingConfig,omitempty"`
}

// PollingConfig carries ISO-8601-style duration hints (`PT<n>H|M|S`).
// Values that do not parse are treated as absent.
type PollingConfig struct {
	PollInterval string `json:"pollInterval,omitempty"`
	TimeoutIn    string `json:"timeoutIn,omitempty"`
}

// MediaItem is one selected media descriptor. BaseURL is not fetchable on
// its own; it must be suffixed with a size directive first.
type MediaItem struct {
	ID       string         `json:"id"`
	BaseURL  string         `json:"baseUrl"`
	Filename string         `json:"filename"`
	MimeType string         `json:"mimeType"`
	Media    *MediaMetadata `json:"mediaMetadata,omitempty"`
}

type MediaMetadata struct {
	Width  int `json:"width,string"`
	Height int `json:"height,string"`
}

// MediaItemPage is one page of the remote listing.
type MediaItemPage struct {
	MediaItems    []MediaItem `json:"mediaItems"`
	NextPageToken string      `json:"nextPageToken,omitempty"`
}
