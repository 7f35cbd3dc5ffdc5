// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package styles lists paragraph styles and extracts styled paragraphs
// from parsed documents.
package styles

import (
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/wordmark/pkg/types"
)

// sampleLen bounds the excerpt shown for each style or paragraph.
const sampleLen = 50

// List returns every style used in the document, in first-seen order,
// with a sample of text carrying the style and a usage count.
func List(doc *types.Document) []types.StyleInfo {
	index := make(map[string]int)
	var infos []types.StyleInfo

	for _, node := range doc.Nodes {
		text := strings.TrimSpace(node.PlainText())
		if i, seen := index[node.Style]; seen {
			infos[i].Count++
			if infos[i].Sample == "" && text != "" {
				infos[i].Sample = truncate(text)
			}
			continue
		}
		index[node.Style] = len(infos)
		infos = append(infos, types.StyleInfo{
			Name:   node.Style,
			Sample: truncate(text),
			Count:  1,
		})
	}
	return infos
}

// Paragraph is one extracted paragraph with its style name.
type Paragraph struct {
	Style string `json:"style" yaml:"style"`
	Text  string `json:"text" yaml:"text"`
}

// Extract returns the paragraphs whose style matches one of names.
// Matching is case-insensitive; paragraphs without text are skipped.
func Extract(doc *types.Document, names []string) []Paragraph {
	wanted := make(map[string]bool, len(names))
	for _, n := range names {
		wanted[strings.ToLower(strings.TrimSpace(n))] = true
	}

	var out []Paragraph
	for _, node := range doc.Nodes {
		text := strings.TrimSpace(node.PlainText())
		if text == "" {
			continue
		}
		if wanted[strings.ToLower(node.Style)] {
			out = append(out, Paragraph{Style: node.Style, Text: text})
		}
	}
	return out
}

// WriteMarkdown writes extracted paragraphs grouped by style: each
// change of style opens a new "## <style>" section.
func WriteMarkdown(paragraphs []Paragraph, w io.Writer) error {
	currentStyle := ""
	for _, p := range paragraphs {
		if p.Style != currentStyle {
			if _, err := fmt.Fprintf(w, "\n## %s\n\n", p.Style); err != nil {
				return fmt.Errorf("writing style section: %w", err)
			}
			currentStyle = p.Style
		}
		if _, err := fmt.Fprintf(w, "%s\n\n", p.Text); err != nil {
			return fmt.Errorf("writing paragraph: %w", err)
		}
	}
	return nil
}

// Preview prints a short console listing of extracted paragraphs,
// grouped by style with truncated text.
func Preview(paragraphs []Paragraph, w io.Writer) {
	currentStyle := ""
	for _, p := range paragraphs {
		if p.Style != currentStyle {
			fmt.Fprintf(w, "\n%s:\n", p.Style)
			currentStyle = p.Style
		}
		fmt.Fprintf(w, "  %s\n", truncate(p.Text))
	}
}

// truncate shortens text to sampleLen runes with an ellipsis marker.
func truncate(text string) string {
	runes := []rune(text)
	if len(runes) <= sampleLen {
		return text
	}
	return string(runes[:sampleLen]) + "..."
}
