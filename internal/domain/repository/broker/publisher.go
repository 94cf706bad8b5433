package broker

import "context"

// Publisher dispatches a processing job for the external worker.
type Publisher interface {
	Publish(ctx context.Context, body string) error
}
