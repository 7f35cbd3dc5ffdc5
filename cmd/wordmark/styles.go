// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/wordmark/internal/docx"
	"github.com/pdiddy/wordmark/internal/styles"
	"github.com/pdiddy/wordmark/pkg/types"
)

var stylesCmd = &cobra.Command{
	Use:   "styles <document>",
	Short: "List paragraph styles or extract styled paragraphs",
	Long: `Styles inspects the paragraph styles of a Word document. Without
flags it lists every style with a text sample and a usage count; with
--extract it pulls out the paragraphs carrying the named styles,
optionally writing them to a grouped Markdown file.`,
	Args: cobra.ExactArgs(1),
	RunE: runStyles,
}

func runStyles(cmd *cobra.Command, args []string) error {
	doc, err := docx.Parse(args[0])
	if err != nil {
		return err
	}

	extract, _ := cmd.Flags().GetString("extract")
	if extract == "" {
		return listStyles(doc)
	}

	names := strings.Split(extract, ",")
	paragraphs := styles.Extract(doc, names)
	if len(paragraphs) == 0 {
		return fmt.Errorf("no paragraphs found with style(s): %s", extract)
	}

	output, _ := cmd.Flags().GetString("output")
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		if err := styles.WriteMarkdown(paragraphs, f); err != nil {
			return err
		}
		fmt.Printf("Content saved to %s\n", output)
		return nil
	}

	styles.Preview(paragraphs, os.Stdout)
	return nil
}

func listStyles(doc *types.Document) error {
	infos := styles.List(doc)
	for _, info := range infos {
		name := info.Name
		if name == "" {
			name = "(none)"
		}
		fmt.Printf("Style: %-30s  used %3dx  Sample text: %s\n", name, info.Count, info.Sample)
	}
	fmt.Printf("\nTotal unique styles found: %d\n", len(infos))
	return nil
}

func init() {
	stylesCmd.Flags().String("extract", "", "comma-separated style names to extract")
	stylesCmd.Flags().String("output", "", "write extracted paragraphs to a Markdown file")

	rootCmd.AddCommand(stylesCmd)
}
