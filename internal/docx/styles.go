// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"strconv"
	"strings"

	"github.com/pdiddy/wordmark/pkg/types"
)

// defaultStyle is the style name reported for paragraphs the document
// does not style explicitly.
const defaultStyle = "Normal"

// buildNode classifies a finished paragraph. Paragraphs without any
// text are dropped.
func buildNode(style, numID string, runs []types.InlineRun, ordered map[string]bool) (types.ContentNode, bool) {
	if len(runs) == 0 {
		return types.ContentNode{}, false
	}
	if style == "" {
		style = defaultStyle
	}

	node := types.ContentNode{Style: style, Runs: runs}
	if lvl := headingLevel(style); lvl > 0 {
		node.Role = types.RoleHeading
		node.Level = lvl
		return node, true
	}

	node.Role = listRole(style, numID, ordered)
	return node, true
}

// listRole decides between list and paragraph treatment. The numbering
// definition wins when present; otherwise the style name decides, the
// same way the "List Number" / "List Bullet" built-in styles are named.
func listRole(style, numID string, ordered map[string]bool) types.NodeRole {
	if numID != "" {
		if isOrdered, known := ordered[numID]; known {
			if isOrdered {
				return types.RoleOrderedItem
			}
			return types.RoleUnorderedItem
		}
	}

	key := normalizeStyle(style)
	switch {
	case strings.HasPrefix(key, "listnumber"):
		return types.RoleOrderedItem
	case strings.HasPrefix(key, "list"):
		return types.RoleUnorderedItem
	}

	if numID != "" {
		// Numbered paragraph with no resolvable definition.
		return types.RoleUnorderedItem
	}
	return types.RoleParagraph
}

// headingLevel extracts the heading level from a style name or style
// ID: "Heading 3" and "Heading3" map to 3, "Title" to 1, "Subtitle"
// to 2. Localized prefixes used by non-English templates are accepted.
// Returns 0 for non-heading styles.
func headingLevel(style string) int {
	key := normalizeStyle(style)

	if key == "title" {
		return 1
	}
	if key == "subtitle" {
		return 2
	}

	for _, prefix := range []string{"heading", "titre", "überschrift"} {
		rest, found := strings.CutPrefix(key, prefix)
		if !found {
			continue
		}
		if n, err := strconv.Atoi(rest); err == nil && n >= 1 && n <= 9 {
			return n
		}
	}
	return 0
}

// normalizeStyle lowercases a style name and removes spaces, so style
// IDs ("Heading1") and display names ("heading 1") compare equal.
func normalizeStyle(style string) string {
	return strings.ReplaceAll(strings.ToLower(style), " ", "")
}
