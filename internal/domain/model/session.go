package model

import "time"

// PickerSession is the local record of one remote selection session. The
// remote service owns the session lifecycle; this record caches its id, the
// user-facing picker URI and the advertised polling cadence.
type PickerSession struct {
	ID                 string    `bson:"_id"`
	RemoteID           string    `bson:"remote_id"`
	UserID             string    `bson:"user_id"`
	PickerURI          string    `bson:"picker_uri"`
	MediaItemsSet      bool      `bson:"media_items_set"`
	PollIntervalMillis int64     `bson:"poll_interval_ms"`
	PollTimeoutMillis  int64     `bson:"poll_timeout_ms"`
	ExpireTime         time.Time `bson:"expire_time"`
	CreatedAt          time.Time `bson:"created_at"`
}

// Expired reports whether the locally stored expiry has passed. The check
// takes precedence over every other remote signal.
func (s *PickerSession) Expired(now time.Time) bool {
	return !s.ExpireTime.IsZero() && now.After(s.ExpireTime)
}
