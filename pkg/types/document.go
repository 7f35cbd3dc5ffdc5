// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "strings"

// NodeRole classifies a paragraph-level structural unit of a document.
type NodeRole string

const (
	// RoleHeading marks a heading; ContentNode.Level carries the level.
	RoleHeading NodeRole = "heading"

	// RoleOrderedItem marks one item of a numbered list.
	RoleOrderedItem NodeRole = "ordered-item"

	// RoleUnorderedItem marks one item of a bulleted list.
	RoleUnorderedItem NodeRole = "unordered-item"

	// RoleParagraph marks body text. Unknown roles are rendered as
	// paragraphs rather than rejected.
	RoleParagraph NodeRole = "paragraph"
)

// InlineRun is a contiguous span of text sharing formatting within a
// ContentNode.
type InlineRun struct {
	// Text is the literal run text, unescaped.
	Text string `json:"text" yaml:"text"`

	// Bold and Italic carry the run's emphasis.
	Bold   bool `json:"bold,omitempty" yaml:"bold,omitempty"`
	Italic bool `json:"italic,omitempty" yaml:"italic,omitempty"`

	// Link is the hyperlink target URI, or empty for plain text.
	Link string `json:"link,omitempty" yaml:"link,omitempty"`
}

// ContentNode is one paragraph-level unit of a parsed document. Nodes are
// produced once by the parser and never mutated.
type ContentNode struct {
	// Role selects the structural treatment of the node.
	Role NodeRole `json:"role" yaml:"role"`

	// Level is the heading level for RoleHeading nodes. Values outside
	// 1-6 are clamped at render time.
	Level int `json:"level,omitempty" yaml:"level,omitempty"`

	// Style is the style name the source document attached to the
	// paragraph (e.g. "Heading 1", "List Bullet", "Normal").
	Style string `json:"style,omitempty" yaml:"style,omitempty"`

	// Runs holds the node's inline spans in document order.
	Runs []InlineRun `json:"runs" yaml:"runs"`
}

// PlainText returns the concatenated run text without any formatting.
func (n ContentNode) PlainText() string {
	var b strings.Builder
	for _, r := range n.Runs {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Document is a parsed word-processing document.
type Document struct {
	// Path is the source file path.
	Path string `json:"path" yaml:"path"`

	// Title is the text of the first heading, or empty.
	Title string `json:"title" yaml:"title"`

	// Nodes holds the paragraph-level units in document order.
	Nodes []ContentNode `json:"nodes" yaml:"nodes"`
}

// StyleInfo describes one paragraph style observed in a document.
type StyleInfo struct {
	// Name is the style name as reported by the document.
	Name string `json:"name" yaml:"name"`

	// Sample is a short excerpt of text carrying the style.
	Sample string `json:"sample" yaml:"sample"`

	// Count is the number of paragraphs using the style.
	Count int `json:"count" yaml:"count"`
}

// ConversionStatus indicates the state of document-to-Markdown conversion.
type ConversionStatus string

const (
	ConversionNone   ConversionStatus = "none"
	ConversionDone   ConversionStatus = "converted"
	ConversionFailed ConversionStatus = "failed"
)
