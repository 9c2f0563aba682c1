package launch

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestShellRunnerRunsInDir(t *testing.T) {
	dir := t.TempDir()
	var stdout bytes.Buffer
	runner := &ShellRunner{Dir: dir, Stdout: &stdout, Stderr: &stdout}

	status, err := runner.Run(testCtx(), "echo configured > stamp.txt && echo done")
	require.NoError(t, err)
	require.Equal(t, 0, status)
	require.Equal(t, "done\n", stdout.String())

	data, err := os.ReadFile(filepath.Join(dir, "stamp.txt"))
	require.NoError(t, err)
	require.Equal(t, "configured\n", string(data))
}

func TestShellRunnerExitStatus(t *testing.T) {
	runner := &ShellRunner{Dir: t.TempDir(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	status, err := runner.Run(testCtx(), "exit 3")
	require.NoError(t, err)
	require.Equal(t, 3, status)
}

func TestShellRunnerParseError(t *testing.T) {
	runner := &ShellRunner{Dir: t.TempDir(), Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}

	_, err := runner.Run(testCtx(), "echo 'unterminated")
	require.Error(t, err)
}
