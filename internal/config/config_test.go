package config

import (
	"os"
	"testing"
	"time"

	"github.com/spf13/viper"
)

func TestLoad_Success(t *testing.T) {
	viper.Reset()

	// Switch to a temp directory to avoid loading a real .env
	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	tmpDir := t.TempDir()
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("could not chdir to temp dir: %v", err)
	}
	defer func() {
		if err := os.Chdir(origDir); err != nil {
			t.Fatalf("could not chdir back to original dir: %v", err)
		}
	}()

	reqs := map[string]string{
		"MARIADB_DSN":               "user:pass@tcp(localhost:3306)/db",
		"MARIADB_MAX_OPEN_CONN":     "10",
		"MARIADB_MAX_IDLE_CONNS":    "5",
		"MARIADB_CONN_MAX_LIFETIME": "30",
		"SERVER_PORT":               "8080",
		"ENCODER_TIMEOUT":           "60",
		"FAILED_MEDIA_GRACE":        "5",
		"PIPELINE_MAX_CONCURRENT":   "4",
	}
	for k, v := range reqs {
		t.Setenv(k, v)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.MariaDBDSN != reqs["MARIADB_DSN"] {
		t.Errorf("MariaDBDSN: expected %q, got %q", reqs["MARIADB_DSN"], cfg.MariaDBDSN)
	}
	if cfg.MaxOpenConns != 10 {
		t.Errorf("MaxOpenConns: expected %d, got %d", 10, cfg.MaxOpenConns)
	}
	if cfg.ConnMaxLifetime != 30*time.Second {
		t.Errorf("ConnMaxLifetime: expected %v, got %v", 30*time.Second, cfg.ConnMaxLifetime)
	}
	if cfg.ServerPort != 8080 {
		t.Errorf("ServerPort: expected %d, got %d", 8080, cfg.ServerPort)
	}
	if cfg.EncoderTimeout != time.Minute {
		t.Errorf("EncoderTimeout: expected %v, got %v", time.Minute, cfg.EncoderTimeout)
	}
	if cfg.FailedGrace != 5*time.Second {
		t.Errorf("FailedGrace: expected %v, got %v", 5*time.Second, cfg.FailedGrace)
	}
	if cfg.MaxConcurrent != 4 {
		t.Errorf("MaxConcurrent: expected %d, got %d", 4, cfg.MaxConcurrent)
	}
}

func TestLoad_Defaults(t *testing.T) {
	viper.Reset()

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("could not chdir to temp dir: %v", err)
	}
	defer func() { _ = os.Chdir(origDir) }()

	t.Setenv("MARIADB_DSN", "user:pass@tcp(localhost:3306)/db")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if cfg.FFmpegPath != "ffmpeg" {
		t.Errorf("FFmpegPath: expected %q, got %q", "ffmpeg", cfg.FFmpegPath)
	}
	if cfg.FFprobePath != "ffprobe" {
		t.Errorf("FFprobePath: expected %q, got %q", "ffprobe", cfg.FFprobePath)
	}
	if cfg.MaxUploadSize != 256*1024*1024 {
		t.Errorf("MaxUploadSize: expected %d, got %d", 256*1024*1024, cfg.MaxUploadSize)
	}
	if cfg.MaxConcurrent != 8 {
		t.Errorf("MaxConcurrent: expected %d, got %d", 8, cfg.MaxConcurrent)
	}
	if cfg.EncoderTimeout != 5*time.Minute {
		t.Errorf("EncoderTimeout: expected %v, got %v", 5*time.Minute, cfg.EncoderTimeout)
	}
	if cfg.FailedGrace != 30*time.Second {
		t.Errorf("FailedGrace: expected %v, got %v", 30*time.Second, cfg.FailedGrace)
	}
}

func TestLoad_MissingDSN(t *testing.T) {
	viper.Reset()

	origDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("could not get working directory: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("could not chdir to temp dir: %v", err)
	}
	defer func() { _ = os.Chdir(origDir) }()

	os.Unsetenv("MARIADB_DSN")

	if _, err := Load(); err == nil {
		t.Fatal("expected error when MARIADB_DSN is missing, got nil")
	}
}
