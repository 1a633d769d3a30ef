package media

import (
	"errors"
	"strconv"

	"github.com/chirpnet/media-api/internal/mediaid"
)

var (
	ErrInvalidID           = errors.New("media: invalid identifier")
	ErrNotFound            = errors.New("media: not found")
	ErrStillProcessing     = errors.New("media: still processing")
	ErrIncompatibleType    = errors.New("media: incompatible media type")
	ErrRangeNotSatisfiable = errors.New("media: range not satisfiable")
)

// StatusCacheKey derives the cache key for a record's status entry. The key
// is built from the token's kind so the pipeline and the renderer agree on
// what to invalidate.
func StatusCacheKey(kind mediaid.Kind, id int64) string {
	return kind.String() + ":" + strconv.FormatInt(id, 10)
}
