package mock

import (
	"context"
	"time"
)

// Cache implements cache behaviour for tests.
type Cache struct {
	// stored values
	StatusOut  []byte
	StatusEtag string

	// errors
	GetStatusErr error
	DelStatusErr error

	// call recording
	GetStatusCalled bool
	SetStatusCalled bool
	DelStatusCalled bool
	LastKey         string
	LastTTL         time.Duration
	DeletedKeys     []string
}

func (c *Cache) GetStatus(ctx context.Context, key string) ([]byte, string, error) {
	c.GetStatusCalled = true
	c.LastKey = key
	if c.GetStatusErr != nil {
		return nil, "", c.GetStatusErr
	}
	return c.StatusOut, c.StatusEtag, nil
}

func (c *Cache) SetStatus(ctx context.Context, key string, data []byte, etag string, ttl time.Duration) {
	c.SetStatusCalled = true
	c.LastKey = key
	c.LastTTL = ttl
	c.StatusOut = data
	c.StatusEtag = etag
}

func (c *Cache) DeleteStatus(ctx context.Context, key string) error {
	c.DelStatusCalled = true
	c.DeletedKeys = append(c.DeletedKeys, key)
	return c.DelStatusErr
}
