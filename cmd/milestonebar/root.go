package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "milestonebar",
		Short:   "Render milestone status counts as proportional gradient bars",
		Version: version,
	}

	cmd.PersistentFlags().String("root", ".", "Directory containing milestones.yaml")

	cmd.AddCommand(
		newInitCmd(),
		newAddCmd(),
		newSetCmd(),
		newRenderCmd(),
		newStatusCmd(),
		newPinCmd(),
		newDoctorCmd(),
	)

	return cmd
}
