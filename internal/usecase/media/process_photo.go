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

type photoVariant struct {
	name string
	max  int
}

// photoVariants picks the renditions to produce for a source of the given
// dimensions. Small is always produced; the larger renditions only when the
// source is big enough to fill them, so nothing ever gets upscaled.
func photoVariants(w, h int) []photoVariant {
	vs := []photoVariant{{"small", 512}}
	if w > 768 || h > 768 {
		vs = append(vs, photoVariant{"medium", 1024})
	}
	if w > 2048 || h > 2048 {
		vs = append(vs, photoVariant{"large", 2048})
	}
	return vs
}

func photoFilterArgs(max int) []string {
	scale := fmt.Sprintf("scale='min(%d,iw)':'min(%d,ih)':force_original_aspect_ratio=decrease", max, max)
	return []string{"-vf", scale, "-f", "mjpeg"}
}

func (s *processorSrv) ProcessPhoto(ctx context.Context, id int64, data []byte, role model.PhotoRole) error {
	kind := kindForRole(role)
	log.Printf("processing %s #%d...", kind, id)

	fail := func(cause error) error {
		return s.fail(kind, id, cause,
			func(ctx context.Context, summary string) error {
				return s.photos.Patch(ctx, id, model.PhotoPatch{
					Processing:      model.Ptr(false),
					ProcessingError: model.Ptr(summary),
				})
			},
			func(ctx context.Context) error { return s.photos.Delete(ctx, id) },
		)
	}

	dir, input, report, err := s.prepare(ctx, kind, data)
	if dir != "" {
		defer func() { _ = os.RemoveAll(dir) }()
	}
	if err != nil {
		return fail(err)
	}

	patch := model.PhotoPatch{Processing: model.Ptr(false)}
	switch role {
	case model.RoleProfilePicture:
		patch.ProfilePicture = model.Ptr(true)
	case model.RoleBanner:
		patch.Banner = model.Ptr(true)
	}

	src := report.Streams[0]
	for _, v := range photoVariants(src.Width, src.Height) {
		out, err := s.enc.Encode(ctx, input, filepath.Join(dir, v.name+".jpg"), photoFilterArgs(v.max)...)
		if err != nil {
			return fail(fmt.Errorf("encode %s variant: %w", v.name, err))
		}
		switch v.name {
		case "small":
			patch.JpgSmall = out
		case "medium":
			patch.JpgMedium = out
		case "large":
			patch.JpgLarge = out
		}
	}

	if err := s.photos.Patch(ctx, id, patch); err != nil {
		return fail(fmt.Errorf("finalise record: %w", err))
	}
	s.invalidate(ctx, kind, id)

	log.Printf("✅ %s #%d processed", kind, id)
	return nil
}

func kindForRole(role model.PhotoRole) mediaid.Kind {
	switch role {
	case model.RoleProfilePicture:
		return mediaid.KindProfilePicture
	case model.RoleBanner:
		return mediaid.KindBanner
	}
	return mediaid.KindPhoto
}
