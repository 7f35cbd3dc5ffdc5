// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package markdown

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pdiddy/wordmark/pkg/types"
)

func TestInspect(t *testing.T) {
	nodes := []types.ContentNode{
		{Role: types.RoleHeading, Level: 1, Runs: []types.InlineRun{{Text: "Llamas"}}},
		{Role: types.RoleParagraph, Runs: []types.InlineRun{
			{Text: "see "},
			{Text: "the site", Link: "https://example.com"},
		}},
		{Role: types.RoleHeading, Level: 2, Runs: []types.InlineRun{{Text: "Noises"}}},
		{Role: types.RoleUnorderedItem, Runs: []types.InlineRun{{Text: "Humming"}}},
		{Role: types.RoleUnorderedItem, Runs: []types.InlineRun{{Text: "Spitting"}}},
	}

	ins := Inspect(strings.Join(Render(nodes), "\n"))

	assert.Equal(t, 2, ins.Headings)
	assert.Equal(t, 2, ins.ListItems)
	assert.Equal(t, 1, ins.Links)
}

func TestInspectEmpty(t *testing.T) {
	ins := Inspect("")
	assert.Zero(t, ins.Headings)
	assert.Zero(t, ins.Paragraphs)
	assert.Zero(t, ins.ListItems)
	assert.Zero(t, ins.Links)
}

// Escaped markup characters must not register as structure when the
// output is re-parsed.
func TestInspectEscapedTextStaysFlat(t *testing.T) {
	nodes := []types.ContentNode{
		{Role: types.RoleParagraph, Runs: []types.InlineRun{{Text: "# looks like a heading"}}},
	}
	ins := Inspect(strings.Join(Render(nodes), "\n"))

	assert.Zero(t, ins.Headings)
	assert.Equal(t, 1, ins.Paragraphs)
}
