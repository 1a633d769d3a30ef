package media

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/dhowden/tag"

	"github.com/chirpnet/media-api/internal/mediaid"
	"github.com/chirpnet/media-api/internal/model"
	"github.com/chirpnet/media-api/internal/port"
)

func (s *processorSrv) ProcessAudio(ctx context.Context, id int64, data []byte) error {
	kind := mediaid.KindAudio
	log.Printf("processing audio #%d...", id)

	fail := func(cause error) error {
		return s.fail(kind, id, cause,
			func(ctx context.Context, summary string) error {
				return s.audios.Patch(ctx, id, model.AudioPatch{
					Processing:      model.Ptr(false),
					ProcessingError: model.Ptr(summary),
				})
			},
			func(ctx context.Context) error { return s.audios.Delete(ctx, id) },
		)
	}

	dir, input, report, err := s.prepare(ctx, kind, data)
	if dir != "" {
		defer func() { _ = os.RemoveAll(dir) }()
	}
	if err != nil {
		return fail(err)
	}

	rendition, err := s.enc.Encode(ctx, input, filepath.Join(dir, "128k.mp3"),
		"-vn", "-map", "0:0", "-b:a", "128k", "-f", "mp3")
	if err != nil {
		return fail(fmt.Errorf("encode 128k variant: %w", err))
	}

	patch := model.AudioPatch{
		Processing: model.Ptr(false),
		Mp3128k:    rendition,
	}

	// a second stream is embedded cover art
	if len(report.Streams) == 2 {
		thumbnail, err := s.enc.Encode(ctx, input, filepath.Join(dir, "thumbnail.jpg"),
			"-map", "0:1", "-vf", "scale=512:512", "-vframes", "1", "-f", "mjpeg")
		if err != nil {
			return fail(fmt.Errorf("encode thumbnail: %w", err))
		}
		patch.Thumbnail = thumbnail
	}

	patch.Title, patch.Artist = audioTags(input, report)

	if err := s.audios.Patch(ctx, id, patch); err != nil {
		return fail(fmt.Errorf("finalise record: %w", err))
	}
	s.invalidate(ctx, kind, id)

	log.Printf("✅ audio #%d processed", id)
	return nil
}

// audioTags reads embedded title/artist from the source file, falling back
// to the tags the prober reported. Both are capped before persisting.
func audioTags(path string, report *port.ProbeReport) (title, artist *string) {
	if f, err := os.Open(path); err == nil {
		defer func() { _ = f.Close() }()
		if m, err := tag.ReadFrom(f); err == nil {
			title = nonEmpty(m.Title())
			artist = nonEmpty(m.Artist())
		}
	}
	if title == nil {
		title = nonEmpty(report.Tags["title"])
	}
	if artist == nil {
		artist = nonEmpty(report.Tags["artist"])
	}
	return truncateTag(title), truncateTag(artist)
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func truncateTag(s *string) *string {
	if s == nil {
		return nil
	}
	r := []rune(*s)
	if len(r) <= model.MaxTagLen {
		return s
	}
	return model.Ptr(string(r[:model.MaxTagLen]))
}
