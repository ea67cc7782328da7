// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the wordreorg CLI: it generates an
// editable outline from a Word document's heading structure and rebuilds
// the document to match the edited outline.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/wordreorg/internal/style"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the wordreorg CLI.
var rootCmd = &cobra.Command{
	Use:   "wordreorg",
	Short: "Reorganize Word documents through an editable outline",
	Long: `wordreorg restructures a Word document so its sections follow a
table-of-contents file, and generates that file from an existing document.

The typical flow: run 'generate' to capture a document's heading structure
as a YAML outline, reorder or prune the outline by hand, then run
'reorganize' to produce a document whose sections follow the edited
outline. Section content moves with its heading; nothing is rewritten.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Persistent flags are merged into the executing command's flag
		// set before hooks run.
		noColor, _ := cmd.Flags().GetBool("no-color")
		if noColor || os.Getenv("NO_COLOR") != "" || !viper.GetBool("color") {
			style.Disable()
		}
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./wordreorg.yaml or ~/.config/wordreorg/config.yaml)")
	rootCmd.PersistentFlags().Bool("no-color", false, "disable colored console output")
}

func initConfig() {
	viper.SetDefault("color", true)

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("wordreorg")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "wordreorg"))
		}
	}

	viper.SetEnvPrefix("WORDREORG")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.Error.Render(fmt.Sprintf("Error: %v", err)))
		fmt.Fprintln(os.Stderr, style.Error.Render("Process failed."))
		os.Exit(1)
	}
}
