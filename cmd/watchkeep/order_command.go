package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"watchkeep/internal/watchlist"
)

func newOrderCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "order",
		Short: "Show or apply the to-watch order as editable id: name lines",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the to-watch list as id: name lines",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			doc, err := store.Load()
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), doc.OrderLines())
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "apply [file]",
		Short: "Replace the to-watch order and names from edited lines (stdin when no file)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var text []byte
			var err error
			if len(args) == 1 {
				text, err = os.ReadFile(args[0])
			} else {
				text, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			return store.Update(cmd.Context(), func(doc *watchlist.Document) error {
				return doc.ApplyOrder(string(text))
			})
		},
	})

	return cmd
}
