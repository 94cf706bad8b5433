package config

import "fmt"

// Error is a config-loading error.
type Error struct {
	reason string
}

func (e Error) Error() string {
	return fmt.Sprintf("config: %s", e.reason)
}
