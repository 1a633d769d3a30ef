package media

import (
	"context"
	"database/sql"
	"errors"

	"github.com/chirpnet/media-api/internal/mediaid"
	"github.com/chirpnet/media-api/internal/model"
	"github.com/chirpnet/media-api/internal/port"
)

type statusCheckerSrv struct {
	photos port.PhotoRepository
	videos port.VideoRepository
	audios port.AudioRepository
}

// compile-time check: *statusCheckerSrv must satisfy port.StatusChecker
var _ port.StatusChecker = (*statusCheckerSrv)(nil)

func NewStatusChecker(photos port.PhotoRepository, videos port.VideoRepository, audios port.AudioRepository) port.StatusChecker {
	return &statusCheckerSrv{photos, videos, audios}
}

func (s *statusCheckerSrv) CheckStatus(ctx context.Context, token string) (*port.StatusOutput, error) {
	kind, id, err := mediaid.Decode(token)
	if err != nil {
		return nil, ErrInvalidID
	}

	out := &port.StatusOutput{ID: token}
	switch {
	case kind.IsPhoto():
		p, err := s.photos.GetByID(ctx, id)
		if err != nil {
			return nil, mapRepoErr(err)
		}
		// the role flag only exists once the pipeline stamped it
		if !p.Processing && p.ProcessingError == nil && !roleMatches(kind, p) {
			return nil, ErrIncompatibleType
		}
		out.Processing, out.ProcessingError = p.Processing, p.ProcessingError
	case kind == mediaid.KindVideo:
		v, err := s.videos.GetByID(ctx, id)
		if err != nil {
			return nil, mapRepoErr(err)
		}
		out.Processing, out.ProcessingError = v.Processing, v.ProcessingError
	default:
		a, err := s.audios.GetByID(ctx, id)
		if err != nil {
			return nil, mapRepoErr(err)
		}
		out.Processing, out.ProcessingError = a.Processing, a.ProcessingError
	}

	return out, nil
}

// roleMatches checks the access mode a photo token encodes against the
// record's stamped role. A plain photo token only reaches plain post photos.
func roleMatches(kind mediaid.Kind, p *model.Photo) bool {
	switch kind {
	case mediaid.KindProfilePicture:
		return p.ProfilePicture
	case mediaid.KindBanner:
		return p.Banner
	}
	return !p.ProfilePicture && !p.Banner
}

func mapRepoErr(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	return err
}
