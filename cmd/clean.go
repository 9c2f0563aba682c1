package cmd

import (
	"github.com/spf13/cobra"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Removes stale bitmap captures from the current directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, seq, err := setup(cmd)
		if err != nil {
			return err
		}

		_, err = seq.Clean(ctx)
		return err
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
