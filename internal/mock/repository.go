package mock

import (
	"context"
	"database/sql"
	"sync"

	"github.com/chirpnet/media-api/internal/model"
)

// PhotoRepository implements photo persistence for tests. Recording is
// mutex-guarded so tests can observe writes made by background tasks.
type PhotoRepository struct {
	InsertID  int64
	InsertErr error
	Photo     *model.Photo
	GetErr    error
	PatchErr  error
	DeleteErr error

	mu           sync.Mutex
	InsertCalled bool
	InsertUserID int64
	GetCalledID  int64
	Patches      []model.PhotoPatch
	DeletedIDs   []int64
}

func (r *PhotoRepository) Insert(ctx context.Context, userID int64) (int64, error) {
	r.mu.Lock()
	r.InsertCalled = true
	r.InsertUserID = userID
	r.mu.Unlock()
	return r.InsertID, r.InsertErr
}

func (r *PhotoRepository) GetByID(ctx context.Context, id int64) (*model.Photo, error) {
	r.mu.Lock()
	r.GetCalledID = id
	r.mu.Unlock()
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	if r.Photo == nil {
		return nil, sql.ErrNoRows
	}
	return r.Photo, nil
}

func (r *PhotoRepository) Patch(ctx context.Context, id int64, p model.PhotoPatch) error {
	r.mu.Lock()
	r.Patches = append(r.Patches, p)
	r.mu.Unlock()
	return r.PatchErr
}

func (r *PhotoRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	r.DeletedIDs = append(r.DeletedIDs, id)
	r.mu.Unlock()
	return r.DeleteErr
}

func (r *PhotoRepository) AllPatches() []model.PhotoPatch {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.PhotoPatch(nil), r.Patches...)
}

func (r *PhotoRepository) Deleted() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.DeletedIDs...)
}

// VideoRepository implements video persistence for tests.
type VideoRepository struct {
	InsertID  int64
	InsertErr error
	Video     *model.Video
	GetErr    error
	PatchErr  error
	DeleteErr error

	mu           sync.Mutex
	InsertCalled bool
	InsertUserID int64
	GetCalledID  int64
	Patches      []model.VideoPatch
	DeletedIDs   []int64
}

func (r *VideoRepository) Insert(ctx context.Context, userID int64) (int64, error) {
	r.mu.Lock()
	r.InsertCalled = true
	r.InsertUserID = userID
	r.mu.Unlock()
	return r.InsertID, r.InsertErr
}

func (r *VideoRepository) GetByID(ctx context.Context, id int64) (*model.Video, error) {
	r.mu.Lock()
	r.GetCalledID = id
	r.mu.Unlock()
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	if r.Video == nil {
		return nil, sql.ErrNoRows
	}
	return r.Video, nil
}

func (r *VideoRepository) Patch(ctx context.Context, id int64, p model.VideoPatch) error {
	r.mu.Lock()
	r.Patches = append(r.Patches, p)
	r.mu.Unlock()
	return r.PatchErr
}

func (r *VideoRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	r.DeletedIDs = append(r.DeletedIDs, id)
	r.mu.Unlock()
	return r.DeleteErr
}

func (r *VideoRepository) AllPatches() []model.VideoPatch {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.VideoPatch(nil), r.Patches...)
}

func (r *VideoRepository) Deleted() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.DeletedIDs...)
}

// AudioRepository implements audio persistence for tests.
type AudioRepository struct {
	InsertID  int64
	InsertErr error
	Audio     *model.Audio
	GetErr    error
	PatchErr  error
	DeleteErr error

	mu           sync.Mutex
	InsertCalled bool
	InsertUserID int64
	GetCalledID  int64
	Patches      []model.AudioPatch
	DeletedIDs   []int64
}

func (r *AudioRepository) Insert(ctx context.Context, userID int64) (int64, error) {
	r.mu.Lock()
	r.InsertCalled = true
	r.InsertUserID = userID
	r.mu.Unlock()
	return r.InsertID, r.InsertErr
}

func (r *AudioRepository) GetByID(ctx context.Context, id int64) (*model.Audio, error) {
	r.mu.Lock()
	r.GetCalledID = id
	r.mu.Unlock()
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	if r.Audio == nil {
		return nil, sql.ErrNoRows
	}
	return r.Audio, nil
}

func (r *AudioRepository) Patch(ctx context.Context, id int64, p model.AudioPatch) error {
	r.mu.Lock()
	r.Patches = append(r.Patches, p)
	r.mu.Unlock()
	return r.PatchErr
}

func (r *AudioRepository) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	r.DeletedIDs = append(r.DeletedIDs, id)
	r.mu.Unlock()
	return r.DeleteErr
}

func (r *AudioRepository) AllPatches() []model.AudioPatch {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]model.AudioPatch(nil), r.Patches...)
}

func (r *AudioRepository) Deleted() []int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int64(nil), r.DeletedIDs...)
}
