// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Inspection summarizes the block structure of rendered Markdown.
type Inspection struct {
	Headings   int `json:"headings" yaml:"headings"`
	Paragraphs int `json:"paragraphs" yaml:"paragraphs"`
	ListItems  int `json:"list_items" yaml:"list_items"`
	Links      int `json:"links" yaml:"links"`
}

// Inspect parses Markdown and counts its structural elements. The
// convert stage uses it as a post-render sanity check: rendered output
// that does not parse back into the expected shapes indicates an
// escaping or mapping defect.
func Inspect(source string) Inspection {
	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader([]byte(source)))

	var ins Inspection
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n.Kind() {
		case ast.KindHeading:
			ins.Headings++
		case ast.KindParagraph:
			ins.Paragraphs++
		case ast.KindListItem:
			ins.ListItems++
		case ast.KindLink, ast.KindAutoLink:
			ins.Links++
		}
		return ast.WalkContinue, nil
	})
	return ins
}
