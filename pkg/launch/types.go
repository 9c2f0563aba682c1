package launch

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Flags holds the positional switches passed on the command line
type Flags struct {
	Configure bool
	Debug     bool
	Build     bool
}

// ParseFlags binds args positionally: configure, debug, build.
// Any non-empty string enables a switch; missing or empty ones stay disabled and
// everything past the third argument is ignored.
func ParseFlags(args []string) Flags {
	at := func(idx int) bool {
		return len(args) > idx && args[idx] != ""
	}

	return Flags{
		Configure: at(0),
		Debug:     at(1),
		Build:     at(2),
	}
}

// Commands contains the shell fragments used to assemble each external invocation
type Commands struct {
	Configure   string
	DebugOption string
	Project     string
	Build       string
	Demo        string
}

// ConfigureLine returns the configure command line, with the debug option if requested
func (c Commands) ConfigureLine(debug bool) string {
	parts := []string{c.Configure}
	if debug && c.DebugOption != "" {
		parts = append(parts, c.DebugOption)
	}

	if c.Project != "" {
		parts = append(parts, c.Project)
	}

	return strings.Join(parts, " ")
}

// StepKind identifies one of the fixed sequence steps
type StepKind int

const (
	StepConfigure StepKind = iota
	StepBuild
	StepSettle
	StepCleanup
	StepLaunch
)

func (k StepKind) String() string {
	switch k {
	case StepConfigure:
		return "configure"
	case StepBuild:
		return "build"
	case StepSettle:
		return "settle"
	case StepCleanup:
		return "cleanup"
	case StepLaunch:
		return "launch"
	}

	return fmt.Sprintf("step(%d)", int(k))
}

// Step is a single entry of the plan computed for a set of flags
type Step struct {
	Kind    StepKind
	// Command is the shell command line for configure, build and launch
	Command string
	// Delay is only set for the settle step
	Delay   time.Duration
	// Marker is only set for the cleanup step
	Marker  string
}

func (s Step) String() string {
	switch s.Kind {
	case StepSettle:
		return fmt.Sprintf("wait %s", s.Delay)
	case StepCleanup:
		return fmt.Sprintf("remove *%s*", s.Marker)
	}

	return s.Command
}

// Shell executes a single command line and reports its exit status.
// The returned error is reserved for failures of the shell itself.
type Shell interface {
	Run(ctx context.Context, command string) (int, error)
}

// Sleeper blocks for the given duration or until ctx is done
type Sleeper interface {
	Sleep(ctx context.Context, d time.Duration) error
}
