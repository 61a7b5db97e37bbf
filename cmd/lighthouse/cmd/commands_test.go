package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeDocker = `#!/bin/sh
case "$1" in
ps)
	echo '{"ID":"0123456789abcdef0123","Names":"web","Image":"nginx","State":"running","Status":"Up 2 hours","Ports":"0.0.0.0:8080->80/tcp"}'
	;;
logs)
	echo "tail=$3 id=$4"
	;;
volume)
	echo '{"Name":"pgdata","Driver":"local","Mountpoint":"/data"}'
	;;
*)
	echo "$*"
	;;
esac
`

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("shell scripts are not executable on windows")
	}
	bin := filepath.Join(t.TempDir(), "docker")
	require.NoError(t, os.WriteFile(bin, []byte(fakeDocker), 0o755))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--binary", bin}, args...))
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPsCommand(t *testing.T) {
	out, err := runCLI(t, "ps")
	require.NoError(t, err)
	assert.Contains(t, out, "CONTAINER ID")
	assert.Contains(t, out, "0123456789ab")
	assert.NotContains(t, out, "0123456789abcdef")
	assert.Contains(t, out, "0.0.0.0:8080->80/tcp")
	assert.Contains(t, out, "web")
}

func TestLogsCommandUsesConfiguredTail(t *testing.T) {
	out, err := runCLI(t, "logs", "a1")
	require.NoError(t, err)
	assert.Equal(t, "tail=100 id=a1\n", out)
}

func TestActionCommandUnknownAction(t *testing.T) {
	_, err := runCLI(t, "action", "explode", "a1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown action: explode")
}

func TestActionCommand(t *testing.T) {
	out, err := runCLI(t, "action", "remove", "a1", "b2")
	require.NoError(t, err)
	assert.Equal(t, "rm -f a1\nrm -f b2\n", out)
}

func TestVolumesCommand(t *testing.T) {
	out, err := runCLI(t, "volumes")
	require.NoError(t, err)
	assert.Contains(t, out, "pgdata")
	assert.Contains(t, out, "/data")
}
