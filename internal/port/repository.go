package port

import (
	"context"

	"github.com/chirpnet/media-api/internal/model"
)

// PhotoRepository defines persistence operations for photo records.
// Insert creates a placeholder row (processing=1, all variants NULL) and
// returns the new id; Patch applies only the non-nil fields of the patch and
// never creates a row; Delete on a missing row is a no-op.
type PhotoRepository interface {
	Insert(ctx context.Context, userID int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Photo, error)
	Patch(ctx context.Context, id int64, p model.PhotoPatch) error
	Delete(ctx context.Context, id int64) error
}

// VideoRepository defines persistence operations for video records.
type VideoRepository interface {
	Insert(ctx context.Context, userID int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Video, error)
	Patch(ctx context.Context, id int64, p model.VideoPatch) error
	Delete(ctx context.Context, id int64) error
}

// AudioRepository defines persistence operations for audio records.
type AudioRepository interface {
	Insert(ctx context.Context, userID int64) (int64, error)
	GetByID(ctx context.Context, id int64) (*model.Audio, error)
	Patch(ctx context.Context, id int64, p model.AudioPatch) error
	Delete(ctx context.Context, id int64) error
}
