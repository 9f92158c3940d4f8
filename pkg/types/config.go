// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds the shared configuration types for pdf-renamer.
package types

// HeuristicConfig holds the title-detection policy constants. The bounds
// are exclusive: a candidate line qualifies when its rune count is
// strictly between MinLineLen and MaxLineLen.
type HeuristicConfig struct {
	// MinLineLen is the exclusive lower bound on candidate line length (default 5).
	MinLineLen int `json:"min_line_len" yaml:"min_line_len"`

	// MaxLineLen is the exclusive upper bound on candidate line length (default 100).
	MaxLineLen int `json:"max_line_len" yaml:"max_line_len"`
}

// NamingConfig holds filename sanitization settings.
type NamingConfig struct {
	// MaxNameLength is the maximum filename length in runes, before the
	// extension (default 150).
	MaxNameLength int `json:"max_name_length" yaml:"max_name_length"`

	// Placeholder is the name used when sanitization leaves nothing
	// (default "untitled").
	Placeholder string `json:"placeholder" yaml:"placeholder"`
}

// HistoryConfig holds settings for the rename ledger.
type HistoryConfig struct {
	// DBPath is the SQLite database location. Empty selects the default
	// under the user's state directory.
	DBPath string `json:"db_path" yaml:"db_path"`

	// Disabled turns off ledger recording for the run.
	Disabled bool `json:"disabled" yaml:"disabled"`
}

// RenameConfig groups all settings for a rename run.
type RenameConfig struct {
	Heuristic HeuristicConfig `json:"heuristic" yaml:"heuristic"`
	Naming    NamingConfig    `json:"naming" yaml:"naming"`
	History   HistoryConfig   `json:"history" yaml:"history"`

	// DryRun resolves and reports renames without touching the filesystem.
	DryRun bool `json:"dry_run" yaml:"dry_run"`
}

// DefaultRenameConfig returns the policy defaults used when neither the
// config file nor flags override them.
func DefaultRenameConfig() RenameConfig {
	return RenameConfig{
		Heuristic: HeuristicConfig{MinLineLen: 5, MaxLineLen: 100},
		Naming:    NamingConfig{MaxNameLength: 150, Placeholder: "untitled"},
	}
}
