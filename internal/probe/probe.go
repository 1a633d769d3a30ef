// Package probe inspects uploaded files with an external prober (ffprobe)
// and validates the detected container/codec against the per-kind
// allow-lists before any encoder is launched.
package probe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/chirpnet/media-api/internal/mediaid"
	"github.com/chirpnet/media-api/internal/port"
)

// ErrUnsupportedFormat rejects sources outside the allow-list, with zero
// streams, or (for photos) with more than one stream.
var ErrUnsupportedFormat = errors.New("unsupported media format")

// ffprobe reports mp4-family containers under this single format name.
const mp4Family = "mov,mp4,m4a,3gp,3g2,mj2"

type Prober struct {
	bin string
	run port.CommandRunner
}

// compile-time check: *Prober must satisfy port.Prober
var _ port.Prober = (*Prober)(nil)

func New(bin string, run port.CommandRunner) *Prober {
	return &Prober{bin: bin, run: run}
}

type ffprobeOutput struct {
	Format struct {
		FormatName string            `json:"format_name"`
		Tags       map[string]string `json:"tags"`
	} `json:"format"`
	Streams []struct {
		CodecName string `json:"codec_name"`
		CodecType string `json:"codec_type"`
		Width     int    `json:"width"`
		Height    int    `json:"height"`
	} `json:"streams"`
}

func (p *Prober) Probe(ctx context.Context, path string) (*port.ProbeReport, error) {
	res, err := p.run.Run(ctx, p.bin,
		"-v", "quiet",
		"-print_format", "json",
		"-show_format",
		"-show_streams",
		path,
	)
	if err != nil {
		return nil, fmt.Errorf("ffprobe failed: %w - %s", err, strings.TrimSpace(string(res.Stderr)))
	}

	var out ffprobeOutput
	if err := json.Unmarshal(res.Stdout, &out); err != nil {
		return nil, fmt.Errorf("could not parse ffprobe output: %w", err)
	}

	report := &port.ProbeReport{
		FormatName: out.Format.FormatName,
		Tags:       normaliseTags(out.Format.Tags),
	}
	for _, s := range out.Streams {
		report.Streams = append(report.Streams, port.StreamInfo{
			CodecName: s.CodecName,
			CodecType: s.CodecType,
			Width:     s.Width,
			Height:    s.Height,
		})
	}
	return report, nil
}

// normaliseTags lower-cases tag keys; containers disagree on casing
// ("TITLE" in ogg, "title" in mp3).
func normaliseTags(tags map[string]string) map[string]string {
	if len(tags) == 0 {
		return nil
	}
	out := make(map[string]string, len(tags))
	for k, v := range tags {
		out[strings.ToLower(k)] = v
	}
	return out
}

// Validate checks a probe report against the allow-list for the given kind
// and returns the canonical scratch-file extension for the detected
// container, so the encoder can infer the input format from the file name.
func Validate(kind mediaid.Kind, report *port.ProbeReport) (string, error) {
	if len(report.Streams) == 0 {
		return "", fmt.Errorf("%w: no streams detected", ErrUnsupportedFormat)
	}

	switch {
	case kind.IsPhoto():
		if len(report.Streams) != 1 {
			return "", fmt.Errorf("%w: photos must carry exactly one stream, got %d", ErrUnsupportedFormat, len(report.Streams))
		}
		switch report.Streams[0].CodecName {
		case "mjpeg":
			return "jpg", nil
		case "png":
			return "png", nil
		case "webp":
			return "webp", nil
		}
		return "", fmt.Errorf("%w: photo codec %q", ErrUnsupportedFormat, report.Streams[0].CodecName)

	case kind == mediaid.KindVideo:
		switch {
		case report.FormatName == mp4Family:
			return "mp4", nil
		case strings.Contains(report.FormatName, "webm"), strings.Contains(report.FormatName, "matroska"):
			return "webm", nil
		}
		return "", fmt.Errorf("%w: video container %q", ErrUnsupportedFormat, report.FormatName)

	case kind == mediaid.KindAudio:
		switch {
		case report.FormatName == "mp3":
			return "mp3", nil
		case report.FormatName == "flac":
			return "flac", nil
		case report.FormatName == "ogg":
			return "ogg", nil
		case report.FormatName == mp4Family:
			return "m4a", nil
		}
		return "", fmt.Errorf("%w: audio container %q", ErrUnsupportedFormat, report.FormatName)
	}

	return "", fmt.Errorf("%w: kind %q cannot be probed", ErrUnsupportedFormat, kind)
}
