package api_context

import "context"

type ctxKey string

const (
	MediaFileKey  ctxKey = "mediaFile"
	AuthUserIDKey ctxKey = "authUserID"
)

// MediaFile is the parsed form of a delivery path segment,
// "<token>.<ext>" optionally suffixed with ":<resolution>".
type MediaFile struct {
	Token      string
	Ext        string
	Resolution string
}

func MediaFileFromContext(ctx context.Context) (MediaFile, bool) {
	f, ok := ctx.Value(MediaFileKey).(MediaFile)
	return f, ok
}

func AuthUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(int64)
	return id, ok
}
