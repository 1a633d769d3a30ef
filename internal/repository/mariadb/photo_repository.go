package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/chirpnet/media-api/internal/model"
	"github.com/chirpnet/media-api/internal/port"
)

type PhotoRepository struct {
	db *sql.DB
}

// compile-time check: *PhotoRepository must satisfy port.PhotoRepository
var _ port.PhotoRepository = (*PhotoRepository)(nil)

func NewPhotoRepository(db *sql.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

func (r *PhotoRepository) Insert(ctx context.Context, userID int64) (int64, error) {
	log.Printf("creating placeholder photo row for user #%d...", userID)

	const query = `INSERT INTO photos (user_id, processing) VALUES (?, 1)`
	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *PhotoRepository) GetByID(ctx context.Context, id int64) (*model.Photo, error) {
	log.Printf("fetching photo #%d from the database...", id)

	const query = `
      SELECT id, user_id, processing, processing_error, profile_picture, banner, jpg_small, jpg_medium, jpg_large
      FROM photos
      WHERE id = ?
    `
	row := r.db.QueryRowContext(ctx, query, id)
	var p model.Photo
	if err := row.Scan(
		&p.ID, &p.UserID, &p.Processing, &p.ProcessingError,
		&p.ProfilePicture, &p.Banner,
		&p.JpgSmall, &p.JpgMedium, &p.JpgLarge,
	); err != nil {
		return nil, err
	}

	return &p, nil
}

func (r *PhotoRepository) Patch(ctx context.Context, id int64, p model.PhotoPatch) error {
	log.Printf("patching photo #%d...", id)

	var b patchBuilder
	if p.Processing != nil {
		b.set("processing", *p.Processing)
	}
	if p.ProcessingError != nil {
		b.set("processing_error", *p.ProcessingError)
	}
	if p.ProfilePicture != nil {
		b.set("profile_picture", *p.ProfilePicture)
	}
	if p.Banner != nil {
		b.set("banner", *p.Banner)
	}
	if p.JpgSmall != nil {
		b.set("jpg_small", p.JpgSmall)
	}
	if p.JpgMedium != nil {
		b.set("jpg_medium", p.JpgMedium)
	}
	if p.JpgLarge != nil {
		b.set("jpg_large", p.JpgLarge)
	}
	if b.empty() {
		return nil
	}

	query, args := b.update("photos", id)
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *PhotoRepository) Delete(ctx context.Context, id int64) error {
	log.Printf("deleting photo #%d...", id)

	const query = `DELETE FROM photos WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
