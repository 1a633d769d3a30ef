package cache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func makeTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	// spin up in-memory Redis
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	t.Cleanup(mr.Close)
	// point the real client at it
	rdb := redis.NewClient(&redis.Options{
		Addr:     mr.Addr(),
		Password: "",
		DB:       0,
	})
	return &Cache{client: rdb}, mr
}

func TestGetSetDeleteStatus(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()

	key := "photo:42"
	payload := []byte(`{"id":"AQFCAAAAAAAAAAA","processing":false}`)
	etag := `"0badc0de"`

	// 1) Cache miss
	data, et, err := c.GetStatus(ctx, key)
	if err != nil {
		t.Fatalf("GetStatus miss: %v", err)
	}
	if data != nil || et != "" {
		t.Errorf("GetStatus miss: got (%q, %q); want nils", data, et)
	}

	// 2) Set + Get
	c.SetStatus(ctx, key, payload, etag, 2*time.Minute)
	if ttl := mr.TTL(getCacheKey(key, false)); ttl < time.Minute || ttl > 2*time.Minute+time.Second {
		t.Errorf("redis TTL = %v; want ~2m", ttl)
	}
	if ttl := mr.TTL(getCacheKey(key, true)); ttl < time.Minute || ttl > 2*time.Minute+time.Second {
		t.Errorf("etag TTL = %v; want ~2m", ttl)
	}
	data, et, err = c.GetStatus(ctx, key)
	if err != nil {
		t.Fatalf("GetStatus hit: %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("GetStatus data = %q; want %q", data, payload)
	}
	if et != etag {
		t.Errorf("GetStatus etag = %q; want %q", et, etag)
	}

	// 3) Delete removes both keys
	if err := c.DeleteStatus(ctx, key); err != nil {
		t.Fatalf("DeleteStatus: %v", err)
	}
	if mr.Exists(getCacheKey(key, false)) || mr.Exists(getCacheKey(key, true)) {
		t.Error("expected both cache keys gone after DeleteStatus")
	}
}

func TestGetStatus_MissingEtag(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()

	key := "audio:7"
	mr.Set(getCacheKey(key, false), `{"processing":true}`)

	data, et, err := c.GetStatus(ctx, key)
	if err != nil {
		t.Fatalf("GetStatus: %v", err)
	}
	if string(data) != `{"processing":true}` {
		t.Errorf("unexpected data %q", data)
	}
	if et != "" {
		t.Errorf("expected empty etag when sibling key missing, got %q", et)
	}
}

func TestGetStatus_RedisDown(t *testing.T) {
	c, mr := makeTestCache(t)
	ctx := context.Background()

	mr.Close()
	if _, _, err := c.GetStatus(ctx, "video:1"); err == nil || !strings.Contains(err.Error(), "redis get failed") {
		t.Errorf("expected redis get failed error, got %v", err)
	}
	if err := c.DeleteStatus(ctx, "video:1"); err == nil || !strings.Contains(err.Error(), "redis del failed") {
		t.Errorf("expected redis del failed error, got %v", err)
	}
}

func TestGetCacheKey_Etag(t *testing.T) {
	if got := getCacheKey("photo:1", true); got != "etag:status:photo:1" {
		t.Errorf("getCacheKey(true) = %q; want %q", got, "etag:status:photo:1")
	}
	if got := getCacheKey("photo:1", false); got != "status:photo:1" {
		t.Errorf("getCacheKey() = %q; want %q", got, "status:photo:1")
	}
}

func TestNoopCache(t *testing.T) {
	n := NewNoop()
	ctx := context.Background()

	data, et, err := n.GetStatus(ctx, "photo:1")
	if data != nil || et != "" || err != nil {
		t.Errorf("noop GetStatus = (%v, %q, %v); want all zero", data, et, err)
	}
	n.SetStatus(ctx, "photo:1", []byte("x"), `"y"`, time.Minute)
	if err := n.DeleteStatus(ctx, "photo:1"); err != nil {
		t.Errorf("noop DeleteStatus: %v", err)
	}
}
