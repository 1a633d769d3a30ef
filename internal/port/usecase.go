package port

import (
	"context"

	"github.com/chirpnet/media-api/internal/model"
)

// Uploader accepts raw media bytes, creates the placeholder record and
// schedules the transcode pipeline. It returns as soon as the placeholder is
// visible; the real work happens in the background.
type Uploader interface {
	Upload(ctx context.Context, in UploadInput) (UploadOutput, error)
}
type UploadInput struct {
	UserID int64
	Type   string `validate:"required,oneof=photo video audio profile_picture banner"`
	Data   []byte `validate:"required"`
}
type UploadOutput struct {
	ID         string `json:"id"`
	Processing bool   `json:"processing"`
}

// Processor runs the transcode pipeline for one freshly uploaded record.
// Failures are persisted on the record, never returned to the uploader; the
// error return exists for the task runner's logging only.
type Processor interface {
	ProcessPhoto(ctx context.Context, id int64, data []byte, role model.PhotoRole) error
	ProcessVideo(ctx context.Context, id int64, data []byte) error
	ProcessAudio(ctx context.Context, id int64, data []byte) error
}

// StatusChecker reports whether a record finished processing.
type StatusChecker interface {
	CheckStatus(ctx context.Context, token string) (*StatusOutput, error)
}
type StatusOutput struct {
	ID              string  `json:"id"`
	Processing      bool    `json:"processing"`
	ProcessingError *string `json:"processing_error"`
}

// MetadataGetter returns embedded metadata for audio records.
type MetadataGetter interface {
	GetAudioMetadata(ctx context.Context, token string) (*AudioMetadataOutput, error)
}
type AudioMetadataOutput struct {
	Title     *string `json:"title"`
	Artist    *string `json:"artist"`
	Thumbnail bool    `json:"thumbnail"`
}

// Deliverer resolves a delivery request to concrete bytes and headers.
// On an unsatisfiable range the returned output still carries TotalSize so
// the transport can advertise the payload length.
type Deliverer interface {
	Deliver(ctx context.Context, in DeliverInput) (*DeliverOutput, error)
}
type DeliverInput struct {
	Token      string
	Ext        string
	Resolution string
	// RangeHeader is the raw Range header value, empty when absent.
	RangeHeader string
}
type DeliverOutput struct {
	Body        []byte
	ContentType string
	Filename    string
	// Partial marks a 206 response; RangeStart/RangeEnd are the inclusive
	// byte bounds and TotalSize the full payload length.
	Partial    bool
	RangeStart int64
	RangeEnd   int64
	TotalSize  int64
}

// StatusRenderer mediates between HTTP handlers and the status checker,
// adding caching and ETag derivation.
type StatusRenderer interface {
	RenderStatus(ctx context.Context, checker StatusChecker, token string) ([]byte, string, error)
}
