package media

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/chirpnet/media-api/internal/mediaid"
	"github.com/chirpnet/media-api/internal/model"
)

// videoScale caps the long side at 854 without ever upscaling.
const videoScale = "scale='min(854,iw)':'min(854,ih)':force_original_aspect_ratio=decrease"

func (s *processorSrv) ProcessVideo(ctx context.Context, id int64, data []byte) error {
	kind := mediaid.KindVideo
	log.Printf("processing video #%d...", id)

	fail := func(cause error) error {
		return s.fail(kind, id, cause,
			func(ctx context.Context, summary string) error {
				return s.videos.Patch(ctx, id, model.VideoPatch{
					Processing:      model.Ptr(false),
					ProcessingError: model.Ptr(summary),
				})
			},
			func(ctx context.Context) error { return s.videos.Delete(ctx, id) },
		)
	}

	dir, input, _, err := s.prepare(ctx, kind, data)
	if dir != "" {
		defer func() { _ = os.RemoveAll(dir) }()
	}
	if err != nil {
		return fail(err)
	}

	thumbnail, err := s.enc.Encode(ctx, input, filepath.Join(dir, "thumbnail.jpg"),
		"-vf", videoScale, "-vframes", "1", "-f", "mjpeg")
	if err != nil {
		return fail(fmt.Errorf("encode thumbnail: %w", err))
	}

	rendition, err := s.enc.Encode(ctx, input, filepath.Join(dir, "480p.mp4"),
		"-vf", videoScale, "-pix_fmt", "yuv420p", "-crf", "28", "-preset", "veryfast", "-f", "mp4")
	if err != nil {
		return fail(fmt.Errorf("encode 480p variant: %w", err))
	}

	patch := model.VideoPatch{
		Processing: model.Ptr(false),
		Thumbnail:  thumbnail,
		Mp4480p:    rendition,
	}
	if err := s.videos.Patch(ctx, id, patch); err != nil {
		return fail(fmt.Errorf("finalise record: %w", err))
	}
	s.invalidate(ctx, kind, id)

	log.Printf("✅ video #%d processed", id)
	return nil
}
