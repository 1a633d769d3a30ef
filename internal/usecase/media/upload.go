package media

import (
	"context"
	"fmt"
	"log"

	"github.com/chirpnet/media-api/internal/mediaid"
	"github.com/chirpnet/media-api/internal/model"
	"github.com/chirpnet/media-api/internal/port"
)

type uploaderSrv struct {
	photos port.PhotoRepository
	videos port.VideoRepository
	audios port.AudioRepository
	proc   port.Processor
	runner port.TaskRunner
}

// compile-time check: *uploaderSrv must satisfy port.Uploader
var _ port.Uploader = (*uploaderSrv)(nil)

func NewUploader(photos port.PhotoRepository, videos port.VideoRepository, audios port.AudioRepository, proc port.Processor, runner port.TaskRunner) port.Uploader {
	return &uploaderSrv{photos, videos, audios, proc, runner}
}

// Upload creates the placeholder record, schedules the transcode pipeline
// and returns the record's token right away: the client polls the status
// endpoint to learn when processing finished.
func (s *uploaderSrv) Upload(ctx context.Context, in port.UploadInput) (port.UploadOutput, error) {
	kind, role, err := kindForType(in.Type)
	if err != nil {
		return port.UploadOutput{}, err
	}

	var id int64
	switch kind {
	case mediaid.KindVideo:
		id, err = s.videos.Insert(ctx, in.UserID)
	case mediaid.KindAudio:
		id, err = s.audios.Insert(ctx, in.UserID)
	default:
		id, err = s.photos.Insert(ctx, in.UserID)
	}
	if err != nil {
		return port.UploadOutput{}, fmt.Errorf("insert %s placeholder: %w", kind, err)
	}

	data := in.Data
	s.runner.Go(fmt.Sprintf("process %s #%d", kind, id), func(ctx context.Context) {
		var err error
		switch kind {
		case mediaid.KindVideo:
			err = s.proc.ProcessVideo(ctx, id, data)
		case mediaid.KindAudio:
			err = s.proc.ProcessAudio(ctx, id, data)
		default:
			err = s.proc.ProcessPhoto(ctx, id, data, role)
		}
		if err != nil {
			log.Printf("❌ pipeline failed for %s #%d: %v", kind, id, err)
		}
	})

	return port.UploadOutput{ID: mediaid.Encode(kind, id), Processing: true}, nil
}

func kindForType(t string) (mediaid.Kind, model.PhotoRole, error) {
	switch t {
	case "photo":
		return mediaid.KindPhoto, model.RoleNone, nil
	case "profile_picture":
		return mediaid.KindProfilePicture, model.RoleProfilePicture, nil
	case "banner":
		return mediaid.KindBanner, model.RoleBanner, nil
	case "video":
		return mediaid.KindVideo, model.RoleNone, nil
	case "audio":
		return mediaid.KindAudio, model.RoleNone, nil
	}
	return 0, model.RoleNone, fmt.Errorf("unknown media type %q", t)
}
