// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/wordmark/internal/catalog"
	"github.com/pdiddy/wordmark/pkg/types"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the conversion catalog (search, list, export)",
	Long: `Catalog manages a local SQLite index of converted documents. Use
subcommands to search converted content with full-text queries, list
recorded conversions, or export the catalog manifest as YAML.`,
}

// --- search subcommand ---

var catalogSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Full-text search over converted document titles and bodies",
	Long: `Search runs an FTS5 full-text query over the catalog, ranked by
relevance. Each result includes a snippet with the match highlighted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCatalogSearch,
}

func runCatalogSearch(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.Search(context.Background(), strings.Join(args, " "))
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatCatalogOutput(results, jsonOutput, true)
}

// --- list subcommand ---

var catalogListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded conversions, newest first",
	RunE:  runCatalogList,
}

func runCatalogList(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	results, err := store.List(context.Background())
	if err != nil {
		return err
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return formatCatalogOutput(results, jsonOutput, false)
}

// --- export subcommand ---

var catalogExportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the catalog manifest as YAML",
	Long: `Export writes every catalog entry (without document bodies) as a
YAML manifest, to stdout or to the given file.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCatalogExport,
}

func runCatalogExport(cmd *cobra.Command, args []string) error {
	store, err := catalog.NewStore(catalogConfig(cmd))
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		return store.Export(context.Background(), os.Stdout)
	}

	f, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := store.Export(context.Background(), f); err != nil {
		return err
	}
	fmt.Printf("Exported to %s\n", args[0])
	return nil
}

// --- shared helpers ---

func catalogConfig(cmd *cobra.Command) types.CatalogConfig {
	catalogDir, _ := cmd.Flags().GetString("catalog-dir")
	limit, _ := cmd.Flags().GetInt("limit")

	return types.CatalogConfig{
		CatalogDir: catalogDir,
		MaxResults: limit,
	}
}

func formatCatalogOutput(results []catalog.QueryResult, jsonOutput, withSnippet bool) error {
	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if len(results) == 0 {
		fmt.Println("No results found.")
		return nil
	}

	fmt.Fprintf(os.Stdout, "%-4s  %-24s  %-30s  %-6s  %-20s  %s\n",
		"Rank", "ID", "Title", "Nodes", "Converted", "Snippet")
	fmt.Fprintln(os.Stdout, strings.Repeat("-", 110))

	for i, r := range results {
		id := r.ID
		if len(id) > 24 {
			id = id[:21] + "..."
		}
		title := r.Title
		if len(title) > 30 {
			title = title[:27] + "..."
		}
		converted := ""
		if !r.ConvertedAt.IsZero() {
			converted = r.ConvertedAt.Format("2006-01-02 15:04")
		}
		snippet := ""
		if withSnippet {
			snippet = r.Snippet
		}
		fmt.Fprintf(os.Stdout, "%-4d  %-24s  %-30s  %-6d  %-20s  %s\n",
			i+1, id, title, r.Nodes, converted, snippet)
	}

	fmt.Fprintf(os.Stdout, "\n%d results\n", len(results))
	return nil
}

func init() {
	// Shared flags on the parent command, inherited by subcommands.
	catalogCmd.PersistentFlags().String("catalog-dir", "catalog", "directory holding the catalog database")
	catalogCmd.PersistentFlags().Int("limit", 0, "maximum number of results (0 = use default)")

	catalogSearchCmd.Flags().Bool("json", false, "output results as JSON")
	catalogListCmd.Flags().Bool("json", false, "output results as JSON")

	catalogCmd.AddCommand(catalogSearchCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogExportCmd)

	rootCmd.AddCommand(catalogCmd)
}
