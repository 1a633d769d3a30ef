package mariadb

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/chirpnet/media-api/internal/model"
)

func TestAudioRepository_Patch_Tags(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewAudioRepository(sqlDB)

	patch := model.AudioPatch{
		Processing: model.Ptr(false),
		Title:      model.Ptr("Night Drive"),
		Artist:     model.Ptr("The Owls"),
		Mp3128k:    []byte("mp3"),
	}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE audios SET processing = ?, title = ?, artist = ?, mp3_128k = ? WHERE id = ?`)).
		WithArgs(false, "Night Drive", "The Owls", []byte("mp3"), int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Patch(context.Background(), 3, patch); err != nil {
		t.Fatalf("Patch() returned unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestAudioRepository_GetByID(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewAudioRepository(sqlDB)

	cols := []string{"id", "user_id", "processing", "processing_error", "title", "artist", "thumbnail", "mp3_128k"}
	mock.ExpectQuery("SELECT .+ FROM audios").
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(int64(3), int64(7), 0, nil, "Night Drive", nil, []byte("thumb"), []byte("mp3")))

	a, err := repo.GetByID(context.Background(), 3)
	if err != nil {
		t.Fatalf("GetByID() returned unexpected error: %v", err)
	}
	if a.Title == nil || *a.Title != "Night Drive" {
		t.Errorf("Title: got %v, want %q", a.Title, "Night Drive")
	}
	if a.Artist != nil {
		t.Errorf("Artist: got %v, want nil", a.Artist)
	}
	if string(a.Thumbnail) != "thumb" || string(a.Mp3128k) != "mp3" {
		t.Errorf("blobs: got (%q, %q)", a.Thumbnail, a.Mp3128k)
	}
}

func TestVideoRepository_Patch(t *testing.T) {
	sqlDB, mock := newMock(t)
	repo := NewVideoRepository(sqlDB)

	patch := model.VideoPatch{
		Processing: model.Ptr(false),
		Thumbnail:  []byte("frame"),
		Mp4480p:    []byte("video"),
	}

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE videos SET processing = ?, thumbnail = ?, mp4_480p = ? WHERE id = ?`)).
		WithArgs(false, []byte("frame"), []byte("video"), int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Patch(context.Background(), 5, patch); err != nil {
		t.Fatalf("Patch() returned unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}
