// Package encoder drives the external encoder binary (ffmpeg). Every
// invocation follows one fixed template: read the input, strip all
// metadata, apply the variant's filter args, write a distinct output path.
package encoder

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chirpnet/media-api/internal/port"
)

// ExitError reports a non-zero encoder exit. Stderr holds the captured
// diagnostics for server-side logging; it is never persisted to a record.
type ExitError struct {
	Stderr string
	Err    error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("encoder failed: %v", e.Err)
}

func (e *ExitError) Unwrap() error { return e.Err }

type FFmpeg struct {
	bin     string
	run     port.CommandRunner
	timeout time.Duration
}

// compile-time check: *FFmpeg must satisfy port.Encoder
var _ port.Encoder = (*FFmpeg)(nil)

// New builds an FFmpeg encoder. A timeout of zero disables the
// per-invocation ceiling.
func New(bin string, run port.CommandRunner, timeout time.Duration) *FFmpeg {
	return &FFmpeg{bin: bin, run: run, timeout: timeout}
}

func (f *FFmpeg) Encode(ctx context.Context, inputPath, outputPath string, filterArgs ...string) ([]byte, error) {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	args := make([]string, 0, len(filterArgs)+5)
	args = append(args, "-i", inputPath, "-map_metadata", "-1")
	args = append(args, filterArgs...)
	args = append(args, outputPath)

	res, err := f.run.Run(ctx, f.bin, args...)
	if err != nil {
		return nil, &ExitError{Stderr: string(res.Stderr), Err: err}
	}

	return os.ReadFile(outputPath)
}
