package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"watchkeep/internal/display"
	"watchkeep/internal/watchlist"
)

func newListCommand(ctx *commandContext) *cobra.Command {
	var sortFlag string
	var jsonFlag bool

	cmd := &cobra.Command{
		Use:       "list [towatch|watched]",
		Short:     "Show a watchlist: a table on a terminal, script-filter JSON otherwise",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"towatch", "watched"},
		RunE: func(cmd *cobra.Command, args []string) error {
			listName := "towatch"
			if len(args) == 1 {
				listName = strings.ToLower(args[0])
			}

			sortKey, err := watchlist.ParseSortKey(sortFlag)
			if err != nil {
				return err
			}

			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			doc, err := store.Load()
			if err != nil {
				return err
			}

			if !jsonFlag && isTerminal() {
				return renderListTable(cmd, doc, listName, sortKey)
			}

			var feedback display.Feedback
			if listName == "watched" {
				feedback = display.Watched(doc)
			} else {
				feedback = display.ToWatch(doc, sortKey, cfg.Lists.PreferActionURL)
			}
			payload, err := feedback.JSON()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(payload))
			return nil
		},
	}

	cmd.Flags().StringVar(&sortFlag, "sort", "", "Sort key: duration_ascending, duration_descending, size_ascending, size_descending, best_ratio")
	cmd.Flags().BoolVar(&jsonFlag, "json", false, "Force script-filter JSON output")
	return cmd
}

func renderListTable(cmd *cobra.Command, doc *watchlist.Document, listName string, sortKey watchlist.SortKey) error {
	var entries []watchlist.Entry
	if listName == "watched" {
		entries = doc.Watched
	} else {
		entries = watchlist.Sorted(doc.ToWatch, sortKey)
	}

	if len(entries) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No %s items\n", listName)
		return nil
	}

	rows := make([][]string, 0, len(entries))
	for _, entry := range entries {
		location := entry.PathValue()
		if entry.Kind == watchlist.KindStream {
			location = entry.URLValue()
		}
		count := ""
		if entry.Count != nil {
			count = strconv.Itoa(*entry.Count)
		}
		rows = append(rows, []string{
			entry.ID,
			string(entry.Kind),
			entry.Name,
			count,
			entry.Duration.HumanValue(),
			entry.Size.HumanValue(),
			location,
		})
	}

	table := renderTable(
		[]string{"ID", "Kind", "Name", "Count", "Duration", "Size", "Location"},
		rows,
		3, 4, 5,
	)
	fmt.Fprintln(cmd.OutOrStdout(), table)
	return nil
}

func isTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
