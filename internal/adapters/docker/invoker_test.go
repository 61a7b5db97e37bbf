package docker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melih/lighthouse-desktop/internal/config"
)

// writeScript creates an executable shell script standing in for the runtime binary.
func writeScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	path := filepath.Join(t.TempDir(), "fake-docker")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestCLIRunnerSuccess(t *testing.T) {
	r := &CLIRunner{Binary: writeScript(t, `echo "args: $*"; echo "warning" >&2`)}

	out, err := r.Run(context.Background(), "ps", "-a", "--format", "{{json .}}")
	require.NoError(t, err)
	assert.Equal(t, "args: ps -a --format {{json .}}\n", out)
}

func TestCLIRunnerNonZeroExit(t *testing.T) {
	r := &CLIRunner{Binary: writeScript(t, `echo partial; echo "Error: No such container: a1" >&2; exit 3`)}

	_, err := r.Run(context.Background(), "start", "a1")
	var cmdErr *CommandError
	require.True(t, errors.As(err, &cmdErr))
	assert.Equal(t, 3, cmdErr.ExitCode)
	assert.Equal(t, "Error: No such container: a1\n", err.Error())
}

func TestCLIRunnerNonZeroExitWithoutStderr(t *testing.T) {
	r := &CLIRunner{Binary: writeScript(t, `exit 1`)}

	_, err := r.Run(context.Background(), "pause", "a1")
	require.Error(t, err)
	assert.Equal(t, "pause a1 exited with status 1", err.Error())
}

func TestCLIRunnerSpawnFailure(t *testing.T) {
	r := &CLIRunner{Binary: filepath.Join(t.TempDir(), "does-not-exist")}

	_, err := r.Run(context.Background(), "ps")
	var spawnErr *SpawnError
	require.True(t, errors.As(err, &spawnErr))
	assert.Contains(t, err.Error(), "failed to execute")

	var cmdErr *CommandError
	assert.False(t, errors.As(err, &cmdErr))
}

func TestCLIRunnerEnvironment(t *testing.T) {
	r := NewCLIRunner(config.RuntimeConfig{
		Binary: writeScript(t, `echo "$LIGHTHOUSE_TEST"`),
		Env:    []string{"LIGHTHOUSE_TEST=from-config"},
	})

	out, err := r.Run(context.Background(), "version")
	require.NoError(t, err)
	assert.Equal(t, "from-config\n", out)
}

func TestCLIRunnerTimeout(t *testing.T) {
	r := &CLIRunner{Binary: writeScript(t, `exec sleep 5`), Timeout: 100 * time.Millisecond}

	start := time.Now()
	_, err := r.Run(context.Background(), "stats")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestCLIRunnerNoArgs(t *testing.T) {
	r := &CLIRunner{Binary: "docker"}
	_, err := r.Run(context.Background())
	assert.Error(t, err)
}
