// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"strings"

	"github.com/pdiddy/wordmark/internal/docx"
	"github.com/pdiddy/wordmark/internal/markdown"
)

// NativeConverter parses the .docx container directly and renders
// Markdown through the structure mapper. It needs no external tools.
type NativeConverter struct{}

// Convert parses the document at path and returns its Markdown text.
// An empty document yields empty output, not an error.
func (NativeConverter) Convert(path string) (string, error) {
	doc, err := docx.Parse(path)
	if err != nil {
		return "", err
	}
	return strings.Join(markdown.Render(doc.Nodes), "\n"), nil
}
