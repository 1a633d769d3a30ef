package renderer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"testing"
	"time"

	"github.com/chirpnet/media-api/internal/mediaid"
	"github.com/chirpnet/media-api/internal/mock"
	"github.com/chirpnet/media-api/internal/port"
)

func TestRenderStatus_Cases(t *testing.T) {
	ctx := context.Background()
	token := mediaid.Encode(mediaid.KindPhoto, 42)

	t.Run("cache hit", func(t *testing.T) {
		c := &mock.Cache{StatusOut: []byte(`{"ok":true}`), StatusEtag: "\"1234\""}
		r := NewHTTPRenderer(c, time.Minute)
		checker := &mock.StatusChecker{}

		out, etag, err := r.RenderStatus(ctx, checker, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(out) != string(c.StatusOut) {
			t.Errorf("raw mismatch: got %s want %s", out, c.StatusOut)
		}
		if etag != c.StatusEtag {
			t.Errorf("etag mismatch: got %s want %s", etag, c.StatusEtag)
		}
		if checker.Called {
			t.Error("checker should not be called on cache hit")
		}
		if c.SetStatusCalled {
			t.Error("cache should not be set on hit")
		}
		if c.LastKey != "photo:42" {
			t.Errorf("cache key = %q, want photo:42", c.LastKey)
		}
	})

	t.Run("cache miss", func(t *testing.T) {
		c := &mock.Cache{}
		resp := &port.StatusOutput{ID: token, Processing: true}
		checker := &mock.StatusChecker{Out: resp}
		r := NewHTTPRenderer(c, time.Minute)

		out, etag, err := r.RenderStatus(ctx, checker, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		expected, _ := json.Marshal(resp)
		if string(out) != string(expected) {
			t.Errorf("raw mismatch: got %s want %s", out, expected)
		}
		expEtag := fmt.Sprintf("\"%08x\"", crc32.ChecksumIEEE(expected))
		if etag != expEtag {
			t.Errorf("etag mismatch: got %s want %s", etag, expEtag)
		}
		if !checker.Called {
			t.Error("checker should be called on cache miss")
		}
		if !c.SetStatusCalled {
			t.Error("result should be cached")
		}
		if c.LastTTL != time.Minute {
			t.Errorf("cache TTL = %v, want 1m", c.LastTTL)
		}
	})

	t.Run("checker error", func(t *testing.T) {
		c := &mock.Cache{}
		wantErr := errors.New("boom")
		checker := &mock.StatusChecker{Err: wantErr}
		r := NewHTTPRenderer(c, time.Minute)

		if _, _, err := r.RenderStatus(ctx, checker, token); !errors.Is(err, wantErr) {
			t.Errorf("expected checker error surfaced, got %v", err)
		}
		if c.SetStatusCalled {
			t.Error("errors must not be cached")
		}
	})

	t.Run("invalid token bypasses cache", func(t *testing.T) {
		c := &mock.Cache{StatusOut: []byte("stale"), StatusEtag: "\"x\""}
		checker := &mock.StatusChecker{Out: &port.StatusOutput{ID: "!!", Processing: true}}
		r := NewHTTPRenderer(c, time.Minute)

		if _, _, err := r.RenderStatus(ctx, checker, "!!"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.GetStatusCalled || c.SetStatusCalled {
			t.Error("undecodable tokens must not touch the cache")
		}
		if !checker.Called {
			t.Error("checker decides what an invalid token means")
		}
	})

	t.Run("cache error falls through to checker", func(t *testing.T) {
		c := &mock.Cache{GetStatusErr: errors.New("redis down")}
		checker := &mock.StatusChecker{Out: &port.StatusOutput{ID: token}}
		r := NewHTTPRenderer(c, time.Minute)

		out, _, err := r.RenderStatus(ctx, checker, token)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) == 0 || !checker.Called {
			t.Error("expected fresh result when the cache read fails")
		}
	})
}
