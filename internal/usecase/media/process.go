package media

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/chirpnet/media-api/internal/encoder"
	"github.com/chirpnet/media-api/internal/mediaid"
	"github.com/chirpnet/media-api/internal/port"
	"github.com/chirpnet/media-api/internal/probe"
)

type processorSrv struct {
	photos port.PhotoRepository
	videos port.VideoRepository
	audios port.AudioRepository
	prober port.Prober
	enc    port.Encoder
	cache  port.Cache
	tmpDir string
	grace  time.Duration
}

// compile-time check: *processorSrv must satisfy port.Processor
var _ port.Processor = (*processorSrv)(nil)

func NewProcessor(
	photos port.PhotoRepository,
	videos port.VideoRepository,
	audios port.AudioRepository,
	prober port.Prober,
	enc port.Encoder,
	cache port.Cache,
	tmpDir string,
	grace time.Duration,
) port.Processor {
	return &processorSrv{photos, videos, audios, prober, enc, cache, tmpDir, grace}
}

// prepare writes the upload into an exclusive scratch directory, probes it
// and validates it against the kind's allow-list. The returned input path
// carries the matched extension so the encoder can infer the input format.
// The caller owns dir and must remove it on every exit path.
func (s *processorSrv) prepare(ctx context.Context, kind mediaid.Kind, data []byte) (dir, input string, report *port.ProbeReport, err error) {
	dir = filepath.Join(s.tmpDir, uuid.NewString())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", "", nil, fmt.Errorf("create scratch dir: %w", err)
	}

	scratch := filepath.Join(dir, "input")
	if err := os.WriteFile(scratch, data, 0o600); err != nil {
		return dir, "", nil, fmt.Errorf("write scratch input: %w", err)
	}

	report, err = s.prober.Probe(ctx, scratch)
	if err != nil {
		return dir, "", nil, err
	}

	ext, err := probe.Validate(kind, report)
	if err != nil {
		return dir, "", nil, err
	}

	input = scratch + "." + ext
	if err := os.Rename(scratch, input); err != nil {
		return dir, "", nil, fmt.Errorf("rename scratch input: %w", err)
	}

	return dir, input, report, nil
}

// fail finalises a broken run: the record keeps the error just long enough
// for a polling client to observe it, then the grace timer deletes it.
func (s *processorSrv) fail(kind mediaid.Kind, id int64, cause error, patch func(ctx context.Context, summary string) error, del func(ctx context.Context) error) error {
	var exitErr *encoder.ExitError
	if errors.As(cause, &exitErr) {
		log.Printf("❌ encoder stderr for %s #%d: %s", kind, id, exitErr.Stderr)
	}

	ctx := context.Background()
	if err := patch(ctx, cause.Error()); err != nil {
		log.Printf("❌ could not record failure on %s #%d: %v", kind, id, err)
	}
	s.invalidate(ctx, kind, id)

	time.AfterFunc(s.grace, func() {
		ctx := context.Background()
		if err := del(ctx); err != nil {
			log.Printf("❌ could not delete failed %s #%d: %v", kind, id, err)
			return
		}
		s.invalidate(ctx, kind, id)
		log.Printf("🛑 deleted failed %s #%d after grace window", kind, id)
	})

	return cause
}

func (s *processorSrv) invalidate(ctx context.Context, kind mediaid.Kind, id int64) {
	if err := s.cache.DeleteStatus(ctx, StatusCacheKey(kind, id)); err != nil {
		log.Printf("❌ could not invalidate status cache for %s #%d: %v", kind, id, err)
	}
}
