// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/pdf-renamer/internal/history"
	"github.com/pdiddy/pdf-renamer/internal/namer"
	"github.com/pdiddy/pdf-renamer/internal/rename"
	"github.com/pdiddy/pdf-renamer/internal/title"
	"github.com/pdiddy/pdf-renamer/pkg/types"
)

var renameCmd = &cobra.Command{
	Use:   "rename [directory]",
	Short: "Rename every PDF in a directory after its extracted title",
	Long: `Rename processes each *.pdf file directly under the given directory
(non-recursive). The title is taken from PDF metadata when available, and
otherwise guessed from the first page's text. Titles are sanitized into
safe filenames and collisions resolved with _1, _2, ... suffixes.

Files whose extraction fails are logged and skipped; the batch always
runs to completion. A summary of renamed, skipped, and failed files is
printed at the end.`,
	Args: cobra.ExactArgs(1),
	RunE: runRename,
}

func init() {
	renameCmd.Flags().Bool("dry-run", false, "report what would be renamed without touching any file")
	renameCmd.Flags().Bool("no-history", false, "do not record outcomes in the rename ledger")

	rootCmd.AddCommand(renameCmd)
}

// renameConfig merges policy defaults with the config file and flags.
func renameConfig(cmd *cobra.Command) types.RenameConfig {
	cfg := types.DefaultRenameConfig()

	if v := viper.GetInt("heuristic.min_line_len"); v > 0 {
		cfg.Heuristic.MinLineLen = v
	}
	if v := viper.GetInt("heuristic.max_line_len"); v > 0 {
		cfg.Heuristic.MaxLineLen = v
	}
	if v := viper.GetInt("naming.max_name_length"); v > 0 {
		cfg.Naming.MaxNameLength = v
	}
	if v := viper.GetString("naming.placeholder"); v != "" {
		cfg.Naming.Placeholder = v
	}
	cfg.History.DBPath = viper.GetString("history.db_path")
	cfg.History.Disabled = viper.GetBool("history.disabled")

	cfg.DryRun, _ = cmd.Flags().GetBool("dry-run")
	if noHistory, _ := cmd.Flags().GetBool("no-history"); noHistory {
		cfg.History.Disabled = true
	}
	return cfg
}

func runRename(cmd *cobra.Command, args []string) error {
	dir := args[0]
	cfg := renameConfig(cmd)

	extractor := title.NewExtractor(cfg.Heuristic, log)
	resolver := namer.NewResolver(cfg.Naming)
	titles := rename.NewPDFTitleSource(extractor, log)
	runner := rename.NewRunner(titles, resolver, log, cfg.DryRun)

	result, err := runner.Run(dir)
	if err != nil {
		return err
	}

	if !cfg.DryRun && !cfg.History.Disabled {
		recordHistory(cfg.History, dir, result.Outcomes)
	}

	fmt.Fprintf(os.Stdout, "Batch summary: %d renamed, %d skipped, %d failed (total: %d)\n",
		result.Renamed, result.Skipped, result.Failed, result.Total())

	// Per-file failures do not change the exit code.
	return nil
}

// recordHistory appends the run's outcomes to the ledger. Ledger trouble
// is reported but never fails the run, since the renames already happened.
func recordHistory(cfg types.HistoryConfig, dir string, outcomes []rename.Outcome) {
	store, err := history.NewStore(cfg)
	if err != nil {
		log.WithField("error", err).Warn("rename ledger unavailable")
		return
	}
	defer store.Close()

	if err := store.Record(context.Background(), dir, outcomes); err != nil {
		log.WithField("error", err).Warn("recording rename ledger entries failed")
	}
}
