package main

import (
	"github.com/spf13/cobra"
)

func newPlayCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "play <id>",
		Short: "Play a to-watch entry and mark it watched on success",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			orchestrator, err := ctx.orchestrator()
			if err != nil {
				return err
			}
			return orchestrator.Play(cmd.Context(), args[0])
		},
	}
}
