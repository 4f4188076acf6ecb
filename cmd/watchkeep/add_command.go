package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newAddCommand(ctx *commandContext) *cobra.Command {
	var playlist bool

	cmd := &cobra.Command{
		Use:   "add <path-or-url>",
		Short: "Add a local file, a directory of episodes, or a stream url to the to-watch list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			adder, err := ctx.adder()
			if err != nil {
				return err
			}

			target := strings.TrimSpace(args[0])
			if isURL(target) {
				entry, err := adder.AddURL(cmd.Context(), target, playlist)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added stream %s (%s)\n", entry.Name, entry.ID)
				return nil
			}

			entry, err := adder.AddLocal(cmd.Context(), target)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s (%s)\n", entry.Kind, entry.Name, entry.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&playlist, "playlist", false, "Resolve the url as a full playlist")
	return cmd
}

func isURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}
