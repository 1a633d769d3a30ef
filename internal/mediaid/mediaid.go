// Package mediaid encodes media references as compact, opaque tokens.
//
// A token is the URL-safe unpadded base64 of a fixed little-endian layout:
// one format version byte, one kind byte and the signed 64-bit record id.
// The leading version byte lets the layout evolve without breaking tokens
// already handed out to clients.
package mediaid

import (
	"encoding/base64"
	"encoding/binary"
	"errors"
)

// ErrInvalidID is returned for tokens that cannot be decoded: malformed
// base64, truncated payloads, or unknown version/kind bytes.
var ErrInvalidID = errors.New("invalid media identifier")

// Kind discriminates the table a token refers to. ProfilePicture and Banner
// are access modes over photo rows, not separate tables: decoding them
// yields a photo lookup plus a role check at the delivery layer.
type Kind byte

const (
	KindPhoto          Kind = 1
	KindVideo          Kind = 2
	KindAudio          Kind = 3
	KindProfilePicture Kind = 4
	KindBanner         Kind = 5
)

const (
	versionV1    = 1
	payloadLenV1 = 10
	kindOffsetV1 = 1
	idOffsetV1   = 2
)

func (k Kind) valid() bool {
	return k >= KindPhoto && k <= KindBanner
}

// IsPhoto reports whether the kind resolves to the photos table.
func (k Kind) IsPhoto() bool {
	return k == KindPhoto || k == KindProfilePicture || k == KindBanner
}

func (k Kind) String() string {
	switch k {
	case KindPhoto:
		return "photo"
	case KindVideo:
		return "video"
	case KindAudio:
		return "audio"
	case KindProfilePicture:
		return "profile_picture"
	case KindBanner:
		return "banner"
	}
	return "unknown"
}

// Encode builds the v1 token for a kind and numeric record id.
func Encode(kind Kind, id int64) string {
	buf := make([]byte, payloadLenV1)
	buf[0] = versionV1
	buf[kindOffsetV1] = byte(kind)
	binary.LittleEndian.PutUint64(buf[idOffsetV1:], uint64(id))
	return base64.RawURLEncoding.EncodeToString(buf)
}

// Decode parses a token back into its kind and record id.
func Decode(token string) (Kind, int64, error) {
	data, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return 0, 0, ErrInvalidID
	}
	if len(data) < 1 || data[0] != versionV1 {
		return 0, 0, ErrInvalidID
	}
	if len(data) < payloadLenV1 {
		return 0, 0, ErrInvalidID
	}
	kind := Kind(data[kindOffsetV1])
	if !kind.valid() {
		return 0, 0, ErrInvalidID
	}
	id := int64(binary.LittleEndian.Uint64(data[idOffsetV1:payloadLenV1]))
	return kind, id, nil
}
