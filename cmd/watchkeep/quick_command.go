package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newQuickCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quick",
		Short: "Batch entries into the short-lived quick playlist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <id>",
		Short: "Queue an entry id for sequential playback",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			batcher, err := ctx.batcher()
			if err != nil {
				return err
			}
			return batcher.Add(args[0])
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "play",
		Short: "Drain the quick playlist and trigger playback for each queued id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			batcher, err := ctx.batcher()
			if err != nil {
				return err
			}
			count, err := batcher.Play(cmd.Context())
			if err != nil {
				return err
			}
			if count == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Quick playlist is empty or expired")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Triggered playback for %d items\n", count)
			return nil
		},
	})

	return cmd
}
