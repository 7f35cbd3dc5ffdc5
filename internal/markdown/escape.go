// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import "strings"

// inlineEscaper backslash-escapes characters that Markdown treats as
// inline markup wherever they appear in run text. Stripping backslashes
// from the rendered output must reproduce the source text exactly.
var inlineEscaper = strings.NewReplacer(
	`\`, `\\`,
	"`", "\\`",
	`*`, `\*`,
	`_`, `\_`,
	`[`, `\[`,
	`]`, `\]`,
)

// escapeInline escapes inline-markup characters in run text.
func escapeInline(s string) string {
	return inlineEscaper.Replace(s)
}

// escapeLineStart escapes characters that would open a block construct
// at the start of a rendered line: ATX heading markers, list bullets,
// blockquote markers, and "N." ordered-list prefixes.
func escapeLineStart(s string) string {
	if s == "" {
		return s
	}

	switch s[0] {
	case '#', '-', '+', '>':
		return `\` + s
	}

	// Digits followed by a period read as an ordered-list marker.
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 && i < len(s) && s[i] == '.' {
		return s[:i] + `\` + s[i:]
	}

	return s
}
