// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the pdf-renamer CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// log is the shared logger, injected into every component. Verbosity is
// settled in PersistentPreRun before any subcommand executes.
var log = logrus.New()

// rootCmd is the base command for the pdf-renamer CLI.
var rootCmd = &cobra.Command{
	Use:   "pdf-renamer",
	Short: "Rename PDF files after their extracted titles",
	Long: `pdf-renamer batch-renames the PDF files in a directory, deriving each
filename from the document's title. The title comes from PDF metadata when
present, and otherwise from a heuristic scan of the first page's text.

Renames are collision-safe: when the target name is taken, a _1, _2, ...
suffix is probed until a free name is found. Every outcome is recorded in
a local ledger, browsable with the history subcommand.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		log.SetOutput(os.Stderr)
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(logrus.DebugLevel)
			log.Debug("verbose logging enabled")
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./pdf-renamer.yaml or ~/.config/pdf-renamer/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable debug logging")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("pdf-renamer")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "pdf-renamer"))
		}
	}

	viper.SetEnvPrefix("PDF_RENAMER")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
