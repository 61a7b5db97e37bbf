package docker

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"time"

	"github.com/alessio/shellescape"
	perrors "github.com/pkg/errors"

	"github.com/melih/lighthouse-desktop/internal/config"
	"github.com/melih/lighthouse-desktop/internal/logger"
)

// Runner runs one runtime CLI invocation and returns its standard output.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// CLIRunner runs the runtime binary as a subprocess.
type CLIRunner struct {
	Binary string
	// allow command to have a custom environment
	Environment []string
	// Timeout bounds a single invocation; zero means no bound.
	Timeout time.Duration
}

// NewCLIRunner creates a runner from the runtime configuration.
func NewCLIRunner(cfg config.RuntimeConfig) *CLIRunner {
	return &CLIRunner{
		Binary:      cfg.Binary,
		Environment: cfg.Env,
		Timeout:     cfg.Timeout,
	}
}

// Run spawns the binary with args and waits for it. A non-zero exit yields a
// *CommandError carrying stderr; a failure to start yields a *SpawnError.
func (r *CLIRunner) Run(ctx context.Context, args ...string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("no subcommand given")
	}
	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	cmd := r.buildCmd(ctx, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	logger.Get().Debugw("exec", "cmd", shellescape.QuoteCommand(append([]string{r.Binary}, args...)))
	start := time.Now()
	err := cmd.Run()
	if err == nil {
		logger.Get().Debugw("exec done", "cmd", args[0], "took", time.Since(start))
		return stdout.String(), nil
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return "", perrors.Wrapf(ctxErr, "%s %s", r.Binary, args[0])
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return "", &CommandError{Args: args, ExitCode: exitErr.ExitCode(), Stderr: stderr.String()}
	}
	return "", &SpawnError{Binary: r.Binary, Err: err}
}

func (r *CLIRunner) buildCmd(ctx context.Context, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, r.Binary, args...)
	if r.Environment != nil {
		cmd.Env = append(os.Environ(), r.Environment...)
	}
	return cmd
}
