package launch

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func testCtx() context.Context {
	logger := zerolog.Nop()
	return WithLogger(context.Background(), &logger)
}

type fakeShell struct {
	calls    []string
	statuses map[string]int
	err      error
	// events is shared with fakeSleeper to check the relative order of actions
	events   *[]string
	onRun    func(command string)
}

func (f *fakeShell) Run(ctx context.Context, command string) (int, error) {
	f.calls = append(f.calls, command)
	if f.events != nil {
		*f.events = append(*f.events, "run:"+command)
	}

	if f.onRun != nil {
		f.onRun(command)
	}

	if f.err != nil {
		return -1, f.err
	}

	return f.statuses[command], nil
}

type fakeSleeper struct {
	delays []time.Duration
	events *[]string
}

func (f *fakeSleeper) Sleep(ctx context.Context, d time.Duration) error {
	f.delays = append(f.delays, d)
	if f.events != nil {
		*f.events = append(*f.events, "sleep:"+d.String())
	}

	return nil
}

func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("x"), 0o600))
	}
}

func listDir(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)
	return names
}
