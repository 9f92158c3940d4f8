// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-renamer/internal/history"
	"github.com/pdiddy/pdf-renamer/pkg/types"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Browse the rename ledger",
	Long: `History lists recorded rename outcomes, newest first. Filter by the
directory a batch ran in with --dir, and cap the result count with
--limit. Use --json or --yaml for machine-readable output.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 20, "maximum number of entries to show (0 for all)")
	historyCmd.Flags().String("dir", "", "only show entries for this directory")
	historyCmd.Flags().Bool("json", false, "output entries as JSON")
	historyCmd.Flags().Bool("yaml", false, "output entries as YAML")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	limit, _ := cmd.Flags().GetInt("limit")
	dir, _ := cmd.Flags().GetString("dir")

	store, err := history.NewStore(types.HistoryConfig{DBPath: viper.GetString("history.db_path")})
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List(context.Background(), limit, dir)
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return history.ExportJSON(os.Stdout, entries)
	}
	if asYAML, _ := cmd.Flags().GetBool("yaml"); asYAML {
		return history.ExportYAML(os.Stdout, entries)
	}

	if len(entries) == 0 {
		fmt.Println("No ledger entries found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-20s  %-8s  %-40s  %-40s  %s\n",
		"Recorded", "Status", "Old name", "New name", "Reason")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 120))

	for _, e := range entries {
		fmt.Fprintf(os.Stdout, "%-20s  %-8s  %-40s  %-40s  %s\n",
			e.RecordedAt.Format("2006-01-02 15:04:05"),
			e.Status, truncate(e.OldName, 40), truncate(e.NewName, 40), e.Reason)
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
