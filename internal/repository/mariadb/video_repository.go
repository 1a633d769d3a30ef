package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/chirpnet/media-api/internal/model"
	"github.com/chirpnet/media-api/internal/port"
)

type VideoRepository struct {
	db *sql.DB
}

// compile-time check: *VideoRepository must satisfy port.VideoRepository
var _ port.VideoRepository = (*VideoRepository)(nil)

func NewVideoRepository(db *sql.DB) *VideoRepository {
	return &VideoRepository{db: db}
}

func (r *VideoRepository) Insert(ctx context.Context, userID int64) (int64, error) {
	log.Printf("creating placeholder video row for user #%d...", userID)

	const query = `INSERT INTO videos (user_id, processing) VALUES (?, 1)`
	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *VideoRepository) GetByID(ctx context.Context, id int64) (*model.Video, error) {
	log.Printf("fetching video #%d from the database...", id)

	const query = `
      SELECT id, user_id, processing, processing_error, thumbnail, mp4_480p
      FROM videos
      WHERE id = ?
    `
	row := r.db.QueryRowContext(ctx, query, id)
	var v model.Video
	if err := row.Scan(
		&v.ID, &v.UserID, &v.Processing, &v.ProcessingError,
		&v.Thumbnail, &v.Mp4480p,
	); err != nil {
		return nil, err
	}

	return &v, nil
}

func (r *VideoRepository) Patch(ctx context.Context, id int64, p model.VideoPatch) error {
	log.Printf("patching video #%d...", id)

	var b patchBuilder
	if p.Processing != nil {
		b.set("processing", *p.Processing)
	}
	if p.ProcessingError != nil {
		b.set("processing_error", *p.ProcessingError)
	}
	if p.Thumbnail != nil {
		b.set("thumbnail", p.Thumbnail)
	}
	if p.Mp4480p != nil {
		b.set("mp4_480p", p.Mp4480p)
	}
	if b.empty() {
		return nil
	}

	query, args := b.update("videos", id)
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *VideoRepository) Delete(ctx context.Context, id int64) error {
	log.Printf("deleting video #%d...", id)

	const query = `DELETE FROM videos WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
