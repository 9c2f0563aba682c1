package cmd

import (
	"github.com/spf13/cobra"

	"github.com/ngld/quickshot/tools/pkg"
	"github.com/ngld/quickshot/tools/pkg/launch"
)

var allSteps = []launch.StepKind{
	launch.StepConfigure,
	launch.StepBuild,
	launch.StepSettle,
	launch.StepCleanup,
	launch.StepLaunch,
}

var planCmd = &cobra.Command{
	Use:   "plan [configure] [debug] [build]",
	Short: "Prints the steps a run with the given arguments would execute",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, seq, err := setup(cmd)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		steps := seq.Plan(launch.ParseFlags(args))
		pkg.PrintTask(out, "Plan")

		next := 0
		for _, kind := range allSteps {
			if next < len(steps) && steps[next].Kind == kind {
				pkg.PrintSubtask(out, kind.String()+": "+steps[next].String())
				next++
			} else {
				pkg.PrintSkipped(out, kind.String())
			}
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(planCmd)
}
