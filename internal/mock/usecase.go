package mock

import (
	"context"

	"github.com/chirpnet/media-api/internal/port"
)

// StatusChecker implements status lookups for tests.
type StatusChecker struct {
	Out *port.StatusOutput
	Err error

	Called    bool
	LastToken string
}

func (c *StatusChecker) CheckStatus(ctx context.Context, token string) (*port.StatusOutput, error) {
	c.Called = true
	c.LastToken = token
	if c.Err != nil {
		return nil, c.Err
	}
	return c.Out, nil
}

// Uploader implements uploads for tests.
type Uploader struct {
	Out port.UploadOutput
	Err error

	Called bool
	In     port.UploadInput
}

func (u *Uploader) Upload(ctx context.Context, in port.UploadInput) (port.UploadOutput, error) {
	u.Called = true
	u.In = in
	return u.Out, u.Err
}

// MetadataGetter implements audio metadata lookups for tests.
type MetadataGetter struct {
	Out *port.AudioMetadataOutput
	Err error

	LastToken string
}

func (g *MetadataGetter) GetAudioMetadata(ctx context.Context, token string) (*port.AudioMetadataOutput, error) {
	g.LastToken = token
	if g.Err != nil {
		return nil, g.Err
	}
	return g.Out, nil
}

// Deliverer implements delivery resolution for tests.
type Deliverer struct {
	Out *port.DeliverOutput
	Err error

	In port.DeliverInput
}

// Deliver returns Out and Err as configured; both may be set at once to
// mimic the range-rejection contract where TotalSize accompanies the error.
func (d *Deliverer) Deliver(ctx context.Context, in port.DeliverInput) (*port.DeliverOutput, error) {
	d.In = in
	return d.Out, d.Err
}

// StatusRenderer implements rendered status responses for tests.
type StatusRenderer struct {
	Raw  []byte
	Etag string
	Err  error

	LastToken string
}

func (r *StatusRenderer) RenderStatus(ctx context.Context, checker port.StatusChecker, token string) ([]byte, string, error) {
	r.LastToken = token
	if r.Err != nil {
		return nil, "", r.Err
	}
	return r.Raw, r.Etag, nil
}
