package ports

import "context"

// Network broadcasts a message over some mechanism. Callers must not assume which.
type Network interface {
	Broadcast(ctx context.Context, message string) error
}
