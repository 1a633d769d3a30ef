package model

// MaxTagLen caps the persisted length of audio title/artist tags.
const MaxTagLen = 100

// PhotoRole marks a photo row as a profile picture or banner. The role is
// decided at upload time and never changes afterwards.
type PhotoRole int

const (
	RoleNone PhotoRole = iota
	RoleProfilePicture
	RoleBanner
)

func (r PhotoRole) String() string {
	switch r {
	case RoleProfilePicture:
		return "profile_picture"
	case RoleBanner:
		return "banner"
	}
	return "none"
}

// Photo is a photo record. While Processing is true every variant is nil;
// once it flips false either ProcessingError is set or at least one variant
// is populated.
type Photo struct {
	ID              int64
	UserID          int64
	Processing      bool
	ProcessingError *string
	ProfilePicture  bool
	Banner          bool
	JpgSmall        []byte
	JpgMedium       []byte
	JpgLarge        []byte
}

type Video struct {
	ID              int64
	UserID          int64
	Processing      bool
	ProcessingError *string
	Thumbnail       []byte
	Mp4480p         []byte
}

type Audio struct {
	ID              int64
	UserID          int64
	Processing      bool
	ProcessingError *string
	Title           *string
	Artist          *string
	Thumbnail       []byte
	Mp3128k         []byte
}

// PhotoPatch is a sparse update: only non-nil fields are written.
type PhotoPatch struct {
	Processing      *bool
	ProcessingError *string
	ProfilePicture  *bool
	Banner          *bool
	JpgSmall        []byte
	JpgMedium       []byte
	JpgLarge        []byte
}

type VideoPatch struct {
	Processing      *bool
	ProcessingError *string
	Thumbnail       []byte
	Mp4480p         []byte
}

type AudioPatch struct {
	Processing      *bool
	ProcessingError *string
	Title           *string
	Artist          *string
	Thumbnail       []byte
	Mp3128k         []byte
}

// Ptr returns a pointer to v; convenience for building patches.
func Ptr[T any](v T) *T { return &v }
