package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/chirpnet/media-api/internal/model"
	"github.com/chirpnet/media-api/internal/port"
)

type AudioRepository struct {
	db *sql.DB
}

// compile-time check: *AudioRepository must satisfy port.AudioRepository
var _ port.AudioRepository = (*AudioRepository)(nil)

func NewAudioRepository(db *sql.DB) *AudioRepository {
	return &AudioRepository{db: db}
}

func (r *AudioRepository) Insert(ctx context.Context, userID int64) (int64, error) {
	log.Printf("creating placeholder audio row for user #%d...", userID)

	const query = `INSERT INTO audios (user_id, processing) VALUES (?, 1)`
	res, err := r.db.ExecContext(ctx, query, userID)
	if err != nil {
		return 0, err
	}

	return res.LastInsertId()
}

func (r *AudioRepository) GetByID(ctx context.Context, id int64) (*model.Audio, error) {
	log.Printf("fetching audio #%d from the database...", id)

	const query = `
      SELECT id, user_id, processing, processing_error, title, artist, thumbnail, mp3_128k
      FROM audios
      WHERE id = ?
    `
	row := r.db.QueryRowContext(ctx, query, id)
	var a model.Audio
	if err := row.Scan(
		&a.ID, &a.UserID, &a.Processing, &a.ProcessingError,
		&a.Title, &a.Artist, &a.Thumbnail, &a.Mp3128k,
	); err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *AudioRepository) Patch(ctx context.Context, id int64, p model.AudioPatch) error {
	log.Printf("patching audio #%d...", id)

	var b patchBuilder
	if p.Processing != nil {
		b.set("processing", *p.Processing)
	}
	if p.ProcessingError != nil {
		b.set("processing_error", *p.ProcessingError)
	}
	if p.Title != nil {
		b.set("title", *p.Title)
	}
	if p.Artist != nil {
		b.set("artist", *p.Artist)
	}
	if p.Thumbnail != nil {
		b.set("thumbnail", p.Thumbnail)
	}
	if p.Mp3128k != nil {
		b.set("mp3_128k", p.Mp3128k)
	}
	if b.empty() {
		return nil
	}

	query, args := b.update("audios", id)
	_, err := r.db.ExecContext(ctx, query, args...)
	return err
}

func (r *AudioRepository) Delete(ctx context.Context, id int64) error {
	log.Printf("deleting audio #%d...", id)

	const query = `DELETE FROM audios WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, id)
	return err
}
