package port

import "context"

// CommandResult carries the captured output of a finished external process.
type CommandResult struct {
	Stdout []byte
	Stderr []byte
}

// CommandRunner executes an external binary and waits for it to exit.
// A non-zero exit status is reported as an error; Stderr is captured in
// both cases so callers can log diagnostics.
type CommandRunner interface {
	Run(ctx context.Context, bin string, args ...string) (CommandResult, error)
}

// StreamInfo describes one stream of a probed container.
type StreamInfo struct {
	CodecName string
	CodecType string
	Width     int
	Height    int
}

// ProbeReport is the structured result of probing an uploaded file.
type ProbeReport struct {
	FormatName string
	Tags       map[string]string
	Streams    []StreamInfo
}

// Prober inspects a file on disk and reports its container format, streams
// and embedded tags.
type Prober interface {
	Probe(ctx context.Context, path string) (*ProbeReport, error)
}

// Encoder drives the external encoder to produce one delivery variant.
// It reads inputPath, applies filterArgs, writes outputPath and returns the
// produced bytes. On a non-zero exit the returned error carries the
// encoder's captured stderr.
type Encoder interface {
	Encode(ctx context.Context, inputPath, outputPath string, filterArgs ...string) ([]byte, error)
}
