package main

import (
	"github.com/spf13/cobra"

	"watchkeep/internal/watchlist"
)

func newDeleteCommand(ctx *commandContext) *cobra.Command {
	var fromWatched bool

	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Remove an entry outright, without any watched transition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			list := watchlist.ListToWatch
			if fromWatched {
				list = watchlist.ListWatched
			}
			return store.Update(cmd.Context(), func(doc *watchlist.Document) error {
				if !doc.Delete(args[0], list) {
					return watchlist.Wrap(watchlist.ErrNotFound, "list", "delete", "id "+args[0], nil)
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&fromWatched, "watched", false, "Delete from the watched history instead of the to-watch list")
	return cmd
}
