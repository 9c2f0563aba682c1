package launch

import (
	"context"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// ShellRunner interprets command lines with mvdan.cc/sh in a fixed directory
type ShellRunner struct {
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewShellRunner returns a ShellRunner attached to the process' standard streams
func NewShellRunner(dir string) *ShellRunner {
	return &ShellRunner{
		Dir:    dir,
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

var defaultExecHandler = interp.DefaultExecHandler(2 * time.Second)

func execHandler(ctx context.Context, args []string) error {
	log(ctx).Debug().Strs("args", args).Msg("exec")
	return defaultExecHandler(ctx, args)
}

var defaultOpenHandler = interp.DefaultOpenHandler()

func openHandler(ctx context.Context, path string, flag int, perm os.FileMode) (io.ReadWriteCloser, error) {
	if path == "/dev/null" {
		path = os.DevNull
	}

	return defaultOpenHandler(ctx, path, flag, perm)
}

// Run parses and executes command.
// A non-zero exit status is returned as status with a nil error.
func (r *ShellRunner) Run(ctx context.Context, command string) (int, error) {
	file, err := syntax.NewParser().Parse(strings.NewReader(command), "command")
	if err != nil {
		return -1, eris.Wrapf(err, "failed to parse command %s", command)
	}

	dir := r.Dir
	if dir == "" {
		dir = "."
	}

	runner, err := interp.New(
		interp.Dir(dir),
		interp.Env(expand.ListEnviron(os.Environ()...)),
		interp.ExecHandler(execHandler),
		interp.OpenHandler(openHandler),
		interp.StdIO(r.Stdin, r.Stdout, r.Stderr),
	)
	if err != nil {
		return -1, eris.Wrap(err, "Failed to initialize runner")
	}

	err = runner.Run(ctx, file)
	if status, ok := interp.IsExitStatus(err); ok {
		return int(status), nil
	}

	if err != nil {
		return -1, eris.Wrapf(err, "failed to run %s", command)
	}

	return 0, nil
}
