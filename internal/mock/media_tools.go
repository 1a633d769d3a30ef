package mock

import (
	"context"
	"os"

	"github.com/chirpnet/media-api/internal/port"
)

// Prober implements media probing for tests.
type Prober struct {
	Report   *port.ProbeReport
	ProbeErr error

	ProbedPaths []string
}

func (p *Prober) Probe(ctx context.Context, path string) (*port.ProbeReport, error) {
	p.ProbedPaths = append(p.ProbedPaths, path)
	if p.ProbeErr != nil {
		return nil, p.ProbeErr
	}
	return p.Report, nil
}

// Encoder implements transcoding for tests. Out is returned for every call
// unless OutFor maps a specific output path to dedicated bytes. When Err is
// set every call fails with it.
type Encoder struct {
	Out    []byte
	OutFor map[string][]byte
	Err    error

	Calls []EncodeCall
}

type EncodeCall struct {
	InputPath  string
	OutputPath string
	FilterArgs []string
}

func (e *Encoder) Encode(ctx context.Context, inputPath, outputPath string, filterArgs ...string) ([]byte, error) {
	e.Calls = append(e.Calls, EncodeCall{InputPath: inputPath, OutputPath: outputPath, FilterArgs: filterArgs})
	if e.Err != nil {
		return nil, e.Err
	}
	if out, ok := e.OutFor[outputPath]; ok {
		_ = os.WriteFile(outputPath, out, 0o600)
		return out, nil
	}
	_ = os.WriteFile(outputPath, e.Out, 0o600)
	return e.Out, nil
}

// TaskRunner runs scheduled tasks synchronously so tests can assert on the
// pipeline's side effects without sleeping.
type TaskRunner struct {
	Names []string
}

func (r *TaskRunner) Go(name string, fn func(ctx context.Context)) {
	r.Names = append(r.Names, name)
	fn(context.Background())
}
