package renderer

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/crc32"
	"time"

	"github.com/chirpnet/media-api/internal/mediaid"
	"github.com/chirpnet/media-api/internal/port"
	"github.com/chirpnet/media-api/internal/usecase/media"
)

type httpRenderer struct {
	cache port.Cache
	ttl   time.Duration
}

// compile-time check: *httpRenderer must satisfy port.StatusRenderer
var _ port.StatusRenderer = (*httpRenderer)(nil)

// NewHTTPRenderer creates a new StatusRenderer implementation. Cached entries
// live for at most ttl; the pipeline also invalidates them when a record
// changes state.
func NewHTTPRenderer(cache port.Cache, ttl time.Duration) port.StatusRenderer {
	return &httpRenderer{cache: cache, ttl: ttl}
}

// RenderStatus fetches the status either from cache or from the wrapped use
// case. It returns the JSON encoded output and a quoted ETag string.
func (r *httpRenderer) RenderStatus(ctx context.Context, checker port.StatusChecker, token string) ([]byte, string, error) {
	kind, id, errID := mediaid.Decode(token)
	if errID == nil {
		raw, etag, err := r.cache.GetStatus(ctx, media.StatusCacheKey(kind, id))
		if err == nil && raw != nil && etag != "" {
			return raw, etag, nil
		}
	}

	out, err := checker.CheckStatus(ctx, token)
	if err != nil {
		return nil, "", err
	}

	raw, err := json.Marshal(out)
	if err != nil {
		return nil, "", fmt.Errorf("json marshal: %w", err)
	}

	etag := fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(raw))
	if errID == nil {
		r.cache.SetStatus(ctx, media.StatusCacheKey(kind, id), raw, etag, r.ttl)
	}

	return raw, etag, nil
}
