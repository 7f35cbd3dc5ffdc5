// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package markdown renders parsed document nodes as Markdown lines.
package markdown

import (
	"strconv"
	"strings"

	"github.com/pdiddy/wordmark/pkg/types"
)

// Render maps content nodes to Markdown lines in document order.
//
// Rendering never fails: nodes with an unknown role receive paragraph
// treatment, heading levels are clamped to 1-6, and nodes with no text
// produce no output. Headings and paragraphs are followed by a blank
// line; consecutive list items are not separated, and a list run is
// closed with a blank line only when more content follows it.
func Render(nodes []types.ContentNode) []string {
	var lines []string

	// Position within the current run of ordered list items. Any
	// rendered non-ordered node ends the run.
	ordinal := 0

	for _, node := range nodes {
		if strings.TrimSpace(node.PlainText()) == "" {
			continue
		}

		switch node.Role {
		case types.RoleHeading:
			ordinal = 0
			lines = closeListRun(lines)
			prefix := strings.Repeat("#", clampLevel(node.Level))
			lines = append(lines, prefix+" "+formatRuns(node.Runs, false), "")

		case types.RoleOrderedItem:
			ordinal++
			lines = append(lines, strconv.Itoa(ordinal)+". "+formatRuns(node.Runs, true))

		case types.RoleUnorderedItem:
			ordinal = 0
			lines = append(lines, "- "+formatRuns(node.Runs, true))

		default:
			// Paragraph, and the fallback for unrecognized roles.
			ordinal = 0
			lines = closeListRun(lines)
			lines = append(lines, formatRuns(node.Runs, true), "")
		}
	}

	return lines
}

// closeListRun appends a blank separator line when the previous output
// line is a list item, so a following block element does not attach to
// the list.
func closeListRun(lines []string) []string {
	if len(lines) > 0 && lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}
	return lines
}

// clampLevel bounds a heading level to the Markdown range 1-6.
func clampLevel(level int) int {
	if level < 1 {
		return 1
	}
	if level > 6 {
		return 6
	}
	return level
}

// formatRuns concatenates the formatted text of all runs. When
// guardLineStart is set, block-significant characters at the start of
// the first run are escaped so the rendered line cannot open a new
// block construct.
func formatRuns(runs []types.InlineRun, guardLineStart bool) string {
	var b strings.Builder
	for i, r := range runs {
		b.WriteString(formatRun(r, guardLineStart && i == 0))
	}
	return strings.TrimSpace(b.String())
}

// formatRun escapes and decorates a single run: emphasis first, then
// the link wrapper, so emphasis markers travel inside the link text.
func formatRun(r types.InlineRun, guardLineStart bool) string {
	text := escapeInline(r.Text)
	if guardLineStart {
		text = escapeLineStart(text)
	}

	switch {
	case r.Bold && r.Italic:
		text = "***" + text + "***"
	case r.Bold:
		text = "**" + text + "**"
	case r.Italic:
		text = "*" + text + "*"
	}

	if r.Link != "" {
		text = "[" + text + "](" + r.Link + ")"
	}
	return text
}
