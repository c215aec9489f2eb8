package homework

import "context"

// Client fetches homework statuses changed since the given unix timestamp.
// The result is the decoded JSON body, not yet validated; see CheckResponse.
type Client interface {
	GetStatuses(ctx context.Context, fromDate int64) (any, error)
}
