package main

import (
	"github.com/spf13/cobra"
)

func newRescanCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "rescan <id>",
		Short: "Rescan a series directory and refresh its count and metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			refresher, err := ctx.refresher()
			if err != nil {
				return err
			}
			return refresher.Refresh(cmd.Context(), args[0])
		},
	}
}
