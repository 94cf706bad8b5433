package broker

import "context"

// Message is one delivery from the results stream.
type Message interface {
	Body() string
	Ack() error
	Nack() error
}

// Receiver consumes processing results reported by the external worker.
type Receiver interface {
	Messages(ctx context.Context, consumerName string) (<-chan Message, error)
}
