package media

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/chirpnet/media-api/internal/mediaid"
	"github.com/chirpnet/media-api/internal/port"
)

type delivererSrv struct {
	photos port.PhotoRepository
	videos port.VideoRepository
	audios port.AudioRepository
}

// compile-time check: *delivererSrv must satisfy port.Deliverer
var _ port.Deliverer = (*delivererSrv)(nil)

func NewDeliverer(photos port.PhotoRepository, videos port.VideoRepository, audios port.AudioRepository) port.Deliverer {
	return &delivererSrv{photos, videos, audios}
}

// variant is one stored rendition, named by its resolution/bitrate label.
type variant struct {
	label   string
	payload []byte
}

func (s *delivererSrv) Deliver(ctx context.Context, in port.DeliverInput) (*port.DeliverOutput, error) {
	kind, id, err := mediaid.Decode(in.Token)
	if err != nil {
		return nil, ErrInvalidID
	}

	variants, contentType, err := s.resolveVariants(ctx, kind, id, in.Ext)
	if err != nil {
		return nil, err
	}

	label, payload, err := pickVariant(variants, in.Resolution)
	if err != nil {
		return nil, err
	}

	out := &port.DeliverOutput{
		ContentType: contentType,
		Filename:    fmt.Sprintf("%s_%s.%s", in.Token, label, in.Ext),
		TotalSize:   int64(len(payload)),
	}

	start, end, partial, err := resolveRange(in.RangeHeader, int64(len(payload)))
	if err != nil {
		// keep TotalSize available so the transport can advertise
		// "Content-Range: bytes */<size>" on the rejection
		return out, err
	}
	if partial {
		out.Partial, out.RangeStart, out.RangeEnd = true, start, end
		out.Body = payload[start : end+1]
	} else {
		out.Body = payload
	}

	return out, nil
}

// resolveVariants fetches the record and returns its stored renditions in
// canonical order, largest first.
func (s *delivererSrv) resolveVariants(ctx context.Context, kind mediaid.Kind, id int64, ext string) ([]variant, string, error) {
	switch {
	case kind.IsPhoto():
		p, err := s.photos.GetByID(ctx, id)
		if err != nil {
			return nil, "", mapRepoErr(err)
		}
		if p.Processing {
			return nil, "", ErrStillProcessing
		}
		if ext != "jpg" {
			return nil, "", ErrIncompatibleType
		}
		if !roleMatches(kind, p) {
			return nil, "", ErrIncompatibleType
		}
		return []variant{
			{"large", p.JpgLarge},
			{"medium", p.JpgMedium},
			{"small", p.JpgSmall},
		}, "image/jpeg", nil
	case kind == mediaid.KindVideo:
		v, err := s.videos.GetByID(ctx, id)
		if err != nil {
			return nil, "", mapRepoErr(err)
		}
		if v.Processing {
			return nil, "", ErrStillProcessing
		}
		if ext != "mp4" {
			return nil, "", ErrIncompatibleType
		}
		return []variant{{"480p", v.Mp4480p}}, "video/mp4", nil
	default:
		a, err := s.audios.GetByID(ctx, id)
		if err != nil {
			return nil, "", mapRepoErr(err)
		}
		if a.Processing {
			return nil, "", ErrStillProcessing
		}
		if ext != "mp3" {
			return nil, "", ErrIncompatibleType
		}
		return []variant{{"128k", a.Mp3128k}}, "audio/mpeg", nil
	}
}

// pickVariant matches the resolution hint among populated variants, falling
// back to the best populated one. A finalised record with nothing populated
// is treated as still processing rather than an internal error.
func pickVariant(variants []variant, hint string) (string, []byte, error) {
	if hint != "" {
		for _, v := range variants {
			if v.label == hint && len(v.payload) > 0 {
				return v.label, v.payload, nil
			}
		}
	}
	for _, v := range variants {
		if len(v.payload) > 0 {
			return v.label, v.payload, nil
		}
	}
	return "", nil, ErrStillProcessing
}

// resolveRange interprets a Range header against a payload of the given
// size. End bounds are inclusive; a range covering the whole payload and
// multi-range requests collapse to a plain full response.
func resolveRange(header string, size int64) (start, end int64, partial bool, err error) {
	if header == "" {
		return 0, 0, false, nil
	}
	ranges, ok := strings.CutPrefix(header, "bytes=")
	if !ok {
		// not a byte-range unit, ignore
		return 0, 0, false, nil
	}
	if strings.Contains(ranges, ",") {
		// multi-range collapses to the full payload
		return 0, 0, false, nil
	}
	startStr, endStr, ok := strings.Cut(ranges, "-")
	if !ok {
		return 0, 0, false, ErrRangeNotSatisfiable
	}
	startStr, endStr = strings.TrimSpace(startStr), strings.TrimSpace(endStr)

	end = size
	if endStr != "" {
		if end, err = strconv.ParseInt(endStr, 10, 64); err != nil {
			return 0, 0, false, ErrRangeNotSatisfiable
		}
	}
	if startStr == "" {
		if endStr == "" {
			return 0, 0, false, ErrRangeNotSatisfiable
		}
		// suffix form: the last N bytes
		start, end = size-end, size
	} else if start, err = strconv.ParseInt(startStr, 10, 64); err != nil {
		return 0, 0, false, ErrRangeNotSatisfiable
	}

	if start < 0 || end < start || end > size {
		return 0, 0, false, ErrRangeNotSatisfiable
	}
	if start == 0 && end == size {
		return 0, 0, false, nil
	}

	// end == size means "through the last byte"
	last := end
	if last == size {
		last = size - 1
	}
	if last < start {
		return 0, 0, false, ErrRangeNotSatisfiable
	}
	return start, last, true, nil
}
