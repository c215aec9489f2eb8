package notification

import "context"

// Repository is an append-only journal of delivery attempts.
// It is never read back by the watcher.
type Repository interface {
	Record(ctx context.Context, d *Delivery) error
}
