package main

import (
	"github.com/spf13/cobra"
)

func newWatchedCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watched <id>",
		Short: "Move an entry to the watched history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orchestrator, err := ctx.orchestrator()
			if err != nil {
				return err
			}
			return orchestrator.MarkWatched(cmd.Context(), args[0])
		},
	}
}

func newUnwatchedCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "unwatched <id>",
		Short: "Move a watched entry back to the to-watch list, recovering it from the trash when possible",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orchestrator, err := ctx.orchestrator()
			if err != nil {
				return err
			}
			return orchestrator.MarkUnwatched(cmd.Context(), args[0])
		},
	}
}
