// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the wordmark CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the wordmark CLI.
var rootCmd = &cobra.Command{
	Use:   "wordmark",
	Short: "Convert Word documents to Markdown",
	Long: `wordmark converts Word (.docx) documents into Markdown, preserving
headings, lists, links, and bold/italic emphasis.

Each operation is a subcommand: convert renders a document to Markdown,
styles inspects and extracts styled paragraphs, and catalog manages a
searchable index of past conversions.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./wordmark.yaml or ~/.config/wordmark/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("wordmark")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "wordmark"))
		}
	}

	viper.SetEnvPrefix("WORDMARK")
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
