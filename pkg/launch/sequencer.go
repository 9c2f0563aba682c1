package launch

import (
	"context"
	"time"

	"github.com/rotisserie/eris"
)

// Options configures a Sequencer
type Options struct {
	// Dir is the working directory for all commands and the cleanup step
	Dir         string
	Commands    Commands
	ImageMarker string
	SettleDelay time.Duration
	// DryRun logs every step without executing or deleting anything
	DryRun      bool
}

// Sequencer runs the configure, build, settle, cleanup and launch steps in order
type Sequencer struct {
	opts    Options
	shell   Shell
	sleeper Sleeper
}

// NewSequencer returns a Sequencer using the given shell and sleeper
func NewSequencer(opts Options, shell Shell, sleeper Sleeper) *Sequencer {
	if opts.Dir == "" {
		opts.Dir = "."
	}

	return &Sequencer{
		opts:    opts,
		shell:   shell,
		sleeper: sleeper,
	}
}

// Plan returns the steps Run would execute for flags
func (s *Sequencer) Plan(flags Flags) []Step {
	steps := make([]Step, 0, 5)
	cmds := s.opts.Commands

	if flags.Configure {
		steps = append(steps, Step{Kind: StepConfigure, Command: cmds.ConfigureLine(flags.Debug)})
	}

	if flags.Build {
		steps = append(steps,
			Step{Kind: StepBuild, Command: cmds.Build},
			Step{Kind: StepSettle, Delay: s.opts.SettleDelay},
		)
	}

	return append(steps,
		Step{Kind: StepCleanup, Marker: s.opts.ImageMarker},
		Step{Kind: StepLaunch, Command: cmds.Demo},
	)
}

// Run executes the plan for flags.
// Commands exiting with a non-zero status are logged and don't stop the sequence;
// only shell failures, cleanup errors and context cancellation do.
func (s *Sequencer) Run(ctx context.Context, flags Flags) error {
	log(ctx).Debug().
		Bool("configure", flags.Configure).
		Bool("debug", flags.Debug).
		Bool("build", flags.Build).
		Msg("Starting sequence")

	for _, step := range s.Plan(flags) {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.runStep(ctx, step); err != nil {
			return eris.Wrapf(err, "step %s failed", step.Kind)
		}
	}

	return nil
}

// Clean runs only the cleanup step and returns the removed file names
func (s *Sequencer) Clean(ctx context.Context) ([]string, error) {
	return RemoveImages(ctx, s.opts.Dir, s.opts.ImageMarker, s.opts.DryRun)
}

func (s *Sequencer) runStep(ctx context.Context, step Step) error {
	switch step.Kind {
	case StepConfigure, StepBuild, StepLaunch:
		return s.runCommand(ctx, step)
	case StepSettle:
		log(ctx).Info().
			Str("step", step.Kind.String()).
			Msgf("Waiting %s for build output to settle", step.Delay)

		if s.opts.DryRun {
			return nil
		}
		return s.sleeper.Sleep(ctx, step.Delay)
	case StepCleanup:
		_, err := s.Clean(ctx)
		return err
	}

	return eris.Errorf("unexpected step %s", step.Kind)
}

func (s *Sequencer) runCommand(ctx context.Context, step Step) error {
	log(ctx).Info().
		Str("step", step.Kind.String()).
		Bool("command", true).
		Msg(step.Command)

	if s.opts.DryRun {
		return nil
	}

	status, err := s.shell.Run(ctx, step.Command)
	if err != nil {
		return err
	}

	if status != 0 {
		log(ctx).Warn().
			Str("step", step.Kind.String()).
			Int("status", status).
			Msgf("%s exited with status %d", step.Command, status)
	}

	return nil
}
