// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package convert transforms Word documents into Markdown files with
// pluggable backends.
package convert

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/wordmark/internal/markdown"
	"github.com/pdiddy/wordmark/pkg/types"
)

// Converter transforms one document file into Markdown text. The
// native parser and the pandoc container backend implement this
// interface.
type Converter interface {
	// Convert reads the document at path and returns its Markdown.
	Convert(path string) (string, error)
}

// BatchResult holds the outcome of a batch conversion run.
type BatchResult struct {
	Converted int
	Skipped   int
	Failed    int
}

// Total returns the total number of documents processed.
func (r BatchResult) Total() int {
	return r.Converted + r.Skipped + r.Failed
}

// HasFailures reports whether any documents failed conversion.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// OutputPath returns the default Markdown path for a source document:
// the same location with the extension replaced by .md.
func OutputPath(docPath string) string {
	return strings.TrimSuffix(docPath, filepath.Ext(docPath)) + ".md"
}

// ConvertDocument converts a single document to Markdown at outPath,
// writing per-file status to w. Existing output is skipped unless
// cfg.Force is set. It never returns an error; failures are reported
// through the status so batch runs continue.
func ConvertDocument(c Converter, docPath, outPath string, cfg types.ConvertConfig, w io.Writer) types.ConversionStatus {
	base := filepath.Base(docPath)

	if !cfg.Force {
		if _, err := os.Stat(outPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (output exists)\n", base)
			return types.ConversionNone
		}
	}

	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
			return types.ConversionFailed
		}
	}

	raw, err := c.Convert(docPath)
	if err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.ConversionFailed
	}

	content := raw
	if cfg.Frontmatter {
		content = addFrontmatter(docPath, raw)
	}
	if content != "" && !strings.HasSuffix(content, "\n") {
		content += "\n"
	}

	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		fmt.Fprintf(w, "failed:  %s (%v)\n", base, err)
		return types.ConversionFailed
	}

	fmt.Fprintf(w, "converted: %s -> %s\n", base, outPath)

	if cfg.Verify {
		ins := markdown.Inspect(raw)
		fmt.Fprintf(w, "verified: %d headings, %d paragraphs, %d list items, %d links\n",
			ins.Headings, ins.Paragraphs, ins.ListItems, ins.Links)
	}

	return types.ConversionDone
}

// ConvertBatch converts each source document into outDir, deriving the
// output name from the source basename, and returns a summary.
func ConvertBatch(c Converter, docPaths []string, outDir string, cfg types.ConvertConfig, w io.Writer) BatchResult {
	var result BatchResult
	for _, docPath := range docPaths {
		outPath := filepath.Join(outDir, filepath.Base(OutputPath(docPath)))
		switch ConvertDocument(c, docPath, outPath, cfg, w) {
		case types.ConversionDone:
			result.Converted++
		case types.ConversionNone:
			result.Skipped++
		case types.ConversionFailed:
			result.Failed++
		}
	}
	fmt.Fprintf(w, "\nBatch summary: %d converted, %d skipped, %d failed (total: %d)\n",
		result.Converted, result.Skipped, result.Failed, result.Total())
	return result
}

// addFrontmatter prepends YAML frontmatter to the converted content.
func addFrontmatter(docPath, body string) string {
	ts := time.Now().UTC().Format(time.RFC3339)
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "source: %q\n", docPath)
	fmt.Fprintf(&b, "converted_at: %q\n", ts)
	b.WriteString("---\n\n")
	b.WriteString(body)
	return b.String()
}
