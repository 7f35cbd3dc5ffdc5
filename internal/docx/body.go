// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/pdiddy/wordmark/pkg/types"
)

// parseBody streams word/document.xml and assembles one ContentNode per
// non-empty paragraph. links maps relationship IDs to hyperlink
// targets; ordered maps numbering IDs to list kind.
func parseBody(r io.Reader, links map[string]string, ordered map[string]bool) ([]types.ContentNode, error) {
	dec := xml.NewDecoder(r)
	var nodes []types.ContentNode

	// Paragraph state.
	var (
		inParagraph bool
		style       string
		numID       string
		runs        []types.InlineRun
	)

	// Run state. Bold and italic come from the run properties; link is
	// inherited from an enclosing w:hyperlink element.
	var (
		inRun  bool
		inText bool
		bold   bool
		italic bool
		link   string
		text   strings.Builder
	)

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding %s: %w", documentMember, err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "p":
				inParagraph = true
				style, numID = "", ""
				runs = nil
			case "pStyle":
				if inParagraph && !inRun {
					style = attrValue(t, "val")
				}
			case "numId":
				if inParagraph && !inRun {
					numID = attrValue(t, "val")
				}
			case "hyperlink":
				if inParagraph {
					link = links[attrValue(t, "id")]
				}
			case "r":
				if inParagraph {
					inRun = true
					bold, italic = false, false
					text.Reset()
				}
			case "b":
				if inRun {
					bold = onOff(t)
				}
			case "i":
				if inRun {
					italic = onOff(t)
				}
			case "t":
				if inRun {
					inText = true
				}
			case "tab", "br":
				// No intra-paragraph markup mapping; flatten to a space.
				if inRun {
					text.WriteByte(' ')
				}
			}

		case xml.CharData:
			if inText {
				text.Write(t)
			}

		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "r":
				if inRun && text.Len() > 0 {
					runs = append(runs, types.InlineRun{
						Text:   text.String(),
						Bold:   bold,
						Italic: italic,
						Link:   link,
					})
				}
				inRun = false
			case "hyperlink":
				link = ""
			case "p":
				if inParagraph {
					if node, ok := buildNode(style, numID, runs, ordered); ok {
						nodes = append(nodes, node)
					}
				}
				inParagraph = false
			}
		}
	}

	return nodes, nil
}

// attrValue returns the value of the named attribute, ignoring its
// namespace prefix.
func attrValue(el xml.StartElement, local string) string {
	for _, attr := range el.Attr {
		if attr.Name.Local == local {
			return attr.Value
		}
	}
	return ""
}

// onOff interprets a WordprocessingML toggle element: present without a
// value means on; explicit "false", "0", or "none" means off.
func onOff(el xml.StartElement) bool {
	switch attrValue(el, "val") {
	case "false", "0", "none":
		return false
	}
	return true
}
