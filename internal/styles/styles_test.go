// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package styles

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pdiddy/wordmark/pkg/types"
)

func node(style, text string) types.ContentNode {
	return types.ContentNode{
		Role:  types.RoleParagraph,
		Style: style,
		Runs:  []types.InlineRun{{Text: text}},
	}
}

func sampleDoc() *types.Document {
	return &types.Document{
		Nodes: []types.ContentNode{
			node("Heading 1", "Llamas"),
			node("Normal", "Llamas are camelids."),
			node("Normal", "They hum."),
			node(".Head 2", "Noises"),
			node("Quote", strings.Repeat("long ", 20)),
		},
	}
}

func TestList(t *testing.T) {
	infos := List(sampleDoc())

	if len(infos) != 4 {
		t.Fatalf("got %d styles, want 4", len(infos))
	}

	wantOrder := []string{"Heading 1", "Normal", ".Head 2", "Quote"}
	for i, want := range wantOrder {
		if infos[i].Name != want {
			t.Errorf("style %d = %q, want %q (first-seen order)", i, infos[i].Name, want)
		}
	}

	if infos[1].Count != 2 {
		t.Errorf("Normal count = %d, want 2", infos[1].Count)
	}
	if infos[0].Sample != "Llamas" {
		t.Errorf("Heading 1 sample = %q", infos[0].Sample)
	}
	if got := infos[3].Sample; len([]rune(got)) != sampleLen+3 || !strings.HasSuffix(got, "...") {
		t.Errorf("long sample not truncated: %q", got)
	}
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name  string
		query []string
		want  []string
	}{
		{
			name:  "case-insensitive match",
			query: []string{"heading 1", ".HEAD 2"},
			want:  []string{"Llamas", "Noises"},
		},
		{
			name:  "whitespace around names tolerated",
			query: []string{" Normal "},
			want:  []string{"Llamas are camelids.", "They hum."},
		},
		{
			name:  "no matches",
			query: []string{"Footnote"},
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Extract(sampleDoc(), tt.query)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d paragraphs, want %d", len(got), len(tt.want))
			}
			for i, want := range tt.want {
				if got[i].Text != want {
					t.Errorf("paragraph %d = %q, want %q", i, got[i].Text, want)
				}
			}
		})
	}
}

func TestWriteMarkdownGroupsByStyle(t *testing.T) {
	paragraphs := []Paragraph{
		{Style: ".Head 1", Text: "Overview"},
		{Style: ".Head 1", Text: "Scope"},
		{Style: ".Head 2", Text: "Detail"},
	}

	var buf bytes.Buffer
	if err := WriteMarkdown(paragraphs, &buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	if strings.Count(out, "## .Head 1") != 1 {
		t.Errorf("consecutive paragraphs of one style should share a section:\n%s", out)
	}
	if !strings.Contains(out, "## .Head 2") {
		t.Errorf("missing second style section:\n%s", out)
	}
	if !strings.Contains(out, "Overview\n\n") || !strings.Contains(out, "Scope\n\n") {
		t.Errorf("paragraph text missing or unseparated:\n%s", out)
	}
}

func TestPreview(t *testing.T) {
	paragraphs := []Paragraph{
		{Style: "Normal", Text: strings.Repeat("x", 80)},
	}

	var buf bytes.Buffer
	Preview(paragraphs, &buf)

	if !strings.Contains(buf.String(), "Normal:") {
		t.Errorf("preview missing style header: %q", buf.String())
	}
	if !strings.Contains(buf.String(), strings.Repeat("x", sampleLen)+"...") {
		t.Errorf("preview text not truncated: %q", buf.String())
	}
}
