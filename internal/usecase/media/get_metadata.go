package media

import (
	"context"

	"github.com/chirpnet/media-api/internal/mediaid"
	"github.com/chirpnet/media-api/internal/port"
)

type metadataGetterSrv struct {
	audios port.AudioRepository
}

// compile-time check: *metadataGetterSrv must satisfy port.MetadataGetter
var _ port.MetadataGetter = (*metadataGetterSrv)(nil)

func NewMetadataGetter(audios port.AudioRepository) port.MetadataGetter {
	return &metadataGetterSrv{audios}
}

func (s *metadataGetterSrv) GetAudioMetadata(ctx context.Context, token string) (*port.AudioMetadataOutput, error) {
	kind, id, err := mediaid.Decode(token)
	if err != nil {
		return nil, ErrInvalidID
	}
	if kind != mediaid.KindAudio {
		return nil, ErrIncompatibleType
	}

	a, err := s.audios.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	if a.Processing {
		return nil, ErrStillProcessing
	}

	return &port.AudioMetadataOutput{
		Title:     a.Title,
		Artist:    a.Artist,
		Thumbnail: len(a.Thumbnail) > 0,
	}, nil
}
