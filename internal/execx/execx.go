package execx

import (
	"bytes"
	"context"
	"os/exec"

	"github.com/chirpnet/media-api/internal/port"
)

// OSRunner executes external binaries through os/exec, capturing stdout and
// stderr separately. The context cancels the process and its children.
type OSRunner struct{}

// compile-time check: OSRunner must satisfy port.CommandRunner
var _ port.CommandRunner = OSRunner{}

func (OSRunner) Run(ctx context.Context, bin string, args ...string) (port.CommandResult, error) {
	cmd := exec.CommandContext(ctx, bin, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return port.CommandResult{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}, err
}
