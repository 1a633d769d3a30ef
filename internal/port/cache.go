package port

import (
	"context"
	"time"
)

// Cache provides short-lived caching for media status responses. Entries are
// keyed per record (e.g. "photo:42") and invalidated by the pipeline when it
// finalises or deletes a record.
type Cache interface {
	// GetStatus returns the cached JSON payload and its ETag, or nils on miss.
	GetStatus(ctx context.Context, key string) ([]byte, string, error)
	SetStatus(ctx context.Context, key string, data []byte, etag string, ttl time.Duration)
	DeleteStatus(ctx context.Context, key string) error
}
