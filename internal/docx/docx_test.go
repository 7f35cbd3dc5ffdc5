// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"archive/zip"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/pdiddy/wordmark/pkg/types"
)

const wBody = `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"
            xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships">
<w:body>`

const wBodyEnd = `</w:body></w:document>`

// writeArchive creates a ZIP file with the given members and returns
// its path.
func writeArchive(t *testing.T, members map[string]string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.docx")

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw := zip.NewWriter(f)
	for name, content := range members {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := io.WriteString(w, content); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

// writeDocx wraps body XML in the document skeleton.
func writeDocx(t *testing.T, body string, extra map[string]string) string {
	t.Helper()
	members := map[string]string{
		documentMember: wBody + body + wBodyEnd,
	}
	for name, content := range extra {
		members[name] = content
	}
	return writeArchive(t, members)
}

func TestParseHeadingsAndParagraphs(t *testing.T) {
	body := `
<w:p><w:pPr><w:pStyle w:val="Heading1"/></w:pPr><w:r><w:t>Llamas</w:t></w:r></w:p>
<w:p><w:r><w:t>Llamas are camelids.</w:t></w:r></w:p>
<w:p><w:pPr><w:pStyle w:val="Heading2"/></w:pPr><w:r><w:t>Noises</w:t></w:r></w:p>
<w:p></w:p>`

	doc, err := Parse(writeDocx(t, body, nil))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if doc.Title != "Llamas" {
		t.Errorf("title = %q, want %q", doc.Title, "Llamas")
	}
	if len(doc.Nodes) != 3 {
		t.Fatalf("got %d nodes, want 3 (empty paragraph dropped)", len(doc.Nodes))
	}

	want := []struct {
		role  types.NodeRole
		level int
		text  string
		style string
	}{
		{types.RoleHeading, 1, "Llamas", "Heading1"},
		{types.RoleParagraph, 0, "Llamas are camelids.", "Normal"},
		{types.RoleHeading, 2, "Noises", "Heading2"},
	}
	for i, w := range want {
		n := doc.Nodes[i]
		if n.Role != w.role || n.Level != w.level || n.PlainText() != w.text || n.Style != w.style {
			t.Errorf("node %d = {%s %d %q %q}, want {%s %d %q %q}",
				i, n.Role, n.Level, n.PlainText(), n.Style, w.role, w.level, w.text, w.style)
		}
	}
}

func TestParseRunFormatting(t *testing.T) {
	body := `
<w:p>
  <w:r><w:t xml:space="preserve">plain </w:t></w:r>
  <w:r><w:rPr><w:b/></w:rPr><w:t>loud</w:t></w:r>
  <w:r><w:rPr><w:i/></w:rPr><w:t>slanted</w:t></w:r>
  <w:r><w:rPr><w:b/><w:i/></w:rPr><w:t>both</w:t></w:r>
  <w:r><w:rPr><w:b w:val="false"/></w:rPr><w:t>off</w:t></w:r>
  <w:r><w:rPr><w:b w:val="0"/><w:i w:val="none"/></w:rPr><w:t>also off</w:t></w:r>
</w:p>`

	doc, err := Parse(writeDocx(t, body, nil))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(doc.Nodes) != 1 {
		t.Fatalf("got %d nodes, want 1", len(doc.Nodes))
	}

	runs := doc.Nodes[0].Runs
	want := []types.InlineRun{
		{Text: "plain "},
		{Text: "loud", Bold: true},
		{Text: "slanted", Italic: true},
		{Text: "both", Bold: true, Italic: true},
		{Text: "off"},
		{Text: "also off"},
	}
	if len(runs) != len(want) {
		t.Fatalf("got %d runs, want %d: %+v", len(runs), len(want), runs)
	}
	for i, w := range want {
		if runs[i] != w {
			t.Errorf("run %d = %+v, want %+v", i, runs[i], w)
		}
	}
}

func TestParseHyperlinks(t *testing.T) {
	rels := `<?xml version="1.0"?>
<Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships">
  <Relationship Id="rId4" Type="http://schemas.openxmlformats.org/officeDocument/2006/relationships/hyperlink" Target="https://example.com" TargetMode="External"/>
</Relationships>`

	body := `
<w:p>
  <w:r><w:t xml:space="preserve">see </w:t></w:r>
  <w:hyperlink r:id="rId4"><w:r><w:t>the site</w:t></w:r></w:hyperlink>
  <w:r><w:t xml:space="preserve"> today</w:t></w:r>
</w:p>`

	doc, err := Parse(writeDocx(t, body, map[string]string{relsMember: rels}))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	runs := doc.Nodes[0].Runs
	if len(runs) != 3 {
		t.Fatalf("got %d runs, want 3", len(runs))
	}
	if runs[0].Link != "" {
		t.Errorf("run before hyperlink has link %q", runs[0].Link)
	}
	if runs[1].Link != "https://example.com" || runs[1].Text != "the site" {
		t.Errorf("hyperlink run = %+v", runs[1])
	}
	if runs[2].Link != "" {
		t.Errorf("run after hyperlink has link %q", runs[2].Link)
	}
}

func TestParseNumberingKinds(t *testing.T) {
	numbering := `<?xml version="1.0"?>
<w:numbering xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:abstractNum w:abstractNumId="0">
    <w:lvl w:ilvl="0"><w:numFmt w:val="decimal"/></w:lvl>
  </w:abstractNum>
  <w:abstractNum w:abstractNumId="1">
    <w:lvl w:ilvl="0"><w:numFmt w:val="bullet"/></w:lvl>
  </w:abstractNum>
  <w:num w:numId="1"><w:abstractNumId w:val="0"/></w:num>
  <w:num w:numId="2"><w:abstractNumId w:val="1"/></w:num>
</w:numbering>`

	body := `
<w:p><w:pPr><w:numPr><w:ilvl w:val="0"/><w:numId w:val="1"/></w:numPr></w:pPr><w:r><w:t>counted</w:t></w:r></w:p>
<w:p><w:pPr><w:numPr><w:ilvl w:val="0"/><w:numId w:val="2"/></w:numPr></w:pPr><w:r><w:t>bulleted</w:t></w:r></w:p>
<w:p><w:pPr><w:numPr><w:ilvl w:val="0"/><w:numId w:val="9"/></w:numPr></w:pPr><w:r><w:t>unresolvable</w:t></w:r></w:p>`

	doc, err := Parse(writeDocx(t, body, map[string]string{numberingMember: numbering}))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	wantRoles := []types.NodeRole{
		types.RoleOrderedItem,
		types.RoleUnorderedItem,
		types.RoleUnorderedItem, // unknown numId degrades to bullet
	}
	for i, want := range wantRoles {
		if doc.Nodes[i].Role != want {
			t.Errorf("node %d (%s) role = %s, want %s", i, doc.Nodes[i].PlainText(), doc.Nodes[i].Role, want)
		}
	}
}

func TestParseListStyleFallback(t *testing.T) {
	body := `
<w:p><w:pPr><w:pStyle w:val="ListNumber"/></w:pPr><w:r><w:t>ordered</w:t></w:r></w:p>
<w:p><w:pPr><w:pStyle w:val="ListBullet"/></w:pPr><w:r><w:t>bullet</w:t></w:r></w:p>
<w:p><w:pPr><w:pStyle w:val="ListParagraph"/></w:pPr><w:r><w:t>generic</w:t></w:r></w:p>`

	doc, err := Parse(writeDocx(t, body, nil))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	wantRoles := []types.NodeRole{
		types.RoleOrderedItem,
		types.RoleUnorderedItem,
		types.RoleUnorderedItem,
	}
	for i, want := range wantRoles {
		if doc.Nodes[i].Role != want {
			t.Errorf("node %d role = %s, want %s", i, doc.Nodes[i].Role, want)
		}
	}
}

func TestParseErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := Parse(filepath.Join(t.TempDir(), "absent.docx"))
		if err == nil {
			t.Fatal("expected error for missing file")
		}
		if errors.Is(err, ErrUnsupportedFormat) {
			t.Error("missing file should not report unsupported format")
		}
	})

	t.Run("not a zip", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "plain.docx")
		if err := os.WriteFile(path, []byte("just text"), 0o644); err != nil {
			t.Fatal(err)
		}
		_, err := Parse(path)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("got %v, want ErrUnsupportedFormat", err)
		}
	})

	t.Run("zip without document part", func(t *testing.T) {
		path := writeArchive(t, map[string]string{"mimetype": "application/zip"})
		_, err := Parse(path)
		if !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("got %v, want ErrUnsupportedFormat", err)
		}
	})
}

func TestHeadingLevel(t *testing.T) {
	tests := []struct {
		style string
		want  int
	}{
		{"Heading1", 1},
		{"Heading 3", 3},
		{"heading9", 9},
		{"Title", 1},
		{"Subtitle", 2},
		{"Titre2", 2},
		{"Normal", 0},
		{"Heading", 0},
		{"HeadingX", 0},
		{"ListBullet", 0},
	}
	for _, tt := range tests {
		if got := headingLevel(tt.style); got != tt.want {
			t.Errorf("headingLevel(%q) = %d, want %d", tt.style, got, tt.want)
		}
	}
}
