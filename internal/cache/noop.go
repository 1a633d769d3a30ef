package cache

import (
	"context"
	"time"

	"github.com/chirpnet/media-api/internal/port"
)

type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoop() *NoopCache {
	return &NoopCache{}
}

func (n *NoopCache) GetStatus(ctx context.Context, key string) ([]byte, string, error) {
	return nil, "", nil // always cache miss
}

func (n *NoopCache) SetStatus(ctx context.Context, key string, data []byte, etag string, ttl time.Duration) {
}

func (n *NoopCache) DeleteStatus(ctx context.Context, key string) error { return nil }
