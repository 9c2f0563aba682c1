package launch

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

const settleTick = 100 * time.Millisecond

// BarSleeper waits while drawing a countdown bar on Out
type BarSleeper struct {
	Out   io.Writer
	Quiet bool
}

// NewBarSleeper returns a BarSleeper writing to stderr. The bar is hidden on CI.
func NewBarSleeper(quiet bool) *BarSleeper {
	return &BarSleeper{
		Out:   os.Stderr,
		Quiet: quiet || os.Getenv("CI") == "true",
	}
}

func (s *BarSleeper) newBar(ticks int) *progressbar.ProgressBar {
	if s.Quiet {
		return progressbar.NewOptions(ticks, progressbar.OptionSetVisibility(false))
	}

	out := s.Out
	return progressbar.NewOptions(ticks,
		progressbar.OptionSetDescription("settling"),
		progressbar.OptionSetWriter(out),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprint(out, "\n")
		}),
	)
}

// Sleep blocks for d. It returns ctx.Err() if ctx is done first.
func (s *BarSleeper) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}

	ticks := int(d / settleTick)
	if ticks < 1 {
		ticks = 1
	}

	bar := s.newBar(ticks)
	deadline := time.NewTimer(d)
	defer deadline.Stop()
	ticker := time.NewTicker(d / time.Duration(ticks))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-deadline.C:
			return bar.Finish()
		case <-ticker.C:
			// redraw errors are ignored
			_ = bar.Add(1)
		}
	}
}
