package encoder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/chirpnet/media-api/internal/port"
)

type fakeRunner struct {
	stderr []byte
	err    error

	gotArgs []string
	onRun   func()
}

func (f *fakeRunner) Run(ctx context.Context, bin string, args ...string) (port.CommandResult, error) {
	f.gotArgs = args
	if f.onRun != nil {
		f.onRun()
	}
	return port.CommandResult{Stderr: f.stderr}, f.err
}

func TestFFmpeg_Encode_Success(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "out_small.jpg")

	run := &fakeRunner{onRun: func() {
		if err := os.WriteFile(out, []byte("jpeg bytes"), 0o600); err != nil {
			t.Fatalf("could not write fake output: %v", err)
		}
	}}
	enc := New("ffmpeg", run, time.Minute)

	data, err := enc.Encode(context.Background(), filepath.Join(dir, "input.png"), out,
		"-vf", "scale=512:512:force_original_aspect_ratio=decrease", "-f", "mjpeg")
	if err != nil {
		t.Fatalf("Encode() returned unexpected error: %v", err)
	}
	if string(data) != "jpeg bytes" {
		t.Errorf("Encode() data = %q, want output file contents", data)
	}

	want := []string{
		"-i", filepath.Join(dir, "input.png"),
		"-map_metadata", "-1",
		"-vf", "scale=512:512:force_original_aspect_ratio=decrease",
		"-f", "mjpeg",
		out,
	}
	if !reflect.DeepEqual(run.gotArgs, want) {
		t.Errorf("args:\n got %v\nwant %v", run.gotArgs, want)
	}
}

func TestFFmpeg_Encode_ExitError(t *testing.T) {
	run := &fakeRunner{stderr: []byte("Invalid data found when processing input"), err: errors.New("exit status 1")}
	enc := New("ffmpeg", run, 0)

	_, err := enc.Encode(context.Background(), "in.mp4", "out.mp4")
	if err == nil {
		t.Fatal("expected error, got nil")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("error type: got %T, want *ExitError", err)
	}
	if exitErr.Stderr != "Invalid data found when processing input" {
		t.Errorf("Stderr: got %q", exitErr.Stderr)
	}
}

func TestFFmpeg_Encode_MissingOutput(t *testing.T) {
	// encoder "succeeded" but produced nothing readable
	run := &fakeRunner{}
	enc := New("ffmpeg", run, 0)

	if _, err := enc.Encode(context.Background(), "in.mp4", filepath.Join(t.TempDir(), "never_written.mp4")); err == nil {
		t.Fatal("expected error, got nil")
	}
}
