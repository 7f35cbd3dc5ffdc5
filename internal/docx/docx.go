// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx parses Microsoft Word documents into paragraph-level
// content nodes.
//
// A .docx file is a ZIP container: the paragraph stream lives in
// word/document.xml, hyperlink targets in word/_rels/document.xml.rels,
// and list numbering definitions in word/numbering.xml. The parser
// streams document.xml token by token and never materializes the full
// XML tree.
package docx

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"

	"github.com/pdiddy/wordmark/pkg/types"
)

// ErrUnsupportedFormat reports that the input exists but is not a Word
// document (not a ZIP container, or missing the document part).
var ErrUnsupportedFormat = errors.New("unsupported document format")

const (
	documentMember  = "word/document.xml"
	relsMember      = "word/_rels/document.xml.rels"
	numberingMember = "word/numbering.xml"
)

// Parse reads the document at path and returns its paragraph-level
// structure. Missing hyperlink or numbering parts degrade to plain
// text and bullet treatment; a missing document part is fatal.
func Parse(path string) (*types.Document, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		if errors.Is(err, zip.ErrFormat) {
			return nil, fmt.Errorf("%s: %w: not a ZIP container", path, ErrUnsupportedFormat)
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer r.Close()

	links, err := parseRelationships(&r.Reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	ordered, err := parseNumbering(&r.Reader)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	rc, found, err := openMember(&r.Reader, documentMember)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !found {
		return nil, fmt.Errorf("%s: %w: %s not found in archive", path, ErrUnsupportedFormat, documentMember)
	}
	defer rc.Close()

	nodes, err := parseBody(rc, links, ordered)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &types.Document{
		Path:  path,
		Title: firstHeading(nodes),
		Nodes: nodes,
	}, nil
}

// openMember opens a named file inside the ZIP container.
func openMember(zr *zip.Reader, name string) (io.ReadCloser, bool, error) {
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			if err != nil {
				return nil, true, fmt.Errorf("opening %s: %w", name, err)
			}
			return rc, true, nil
		}
	}
	return nil, false, nil
}

// firstHeading returns the text of the first heading node, or empty.
func firstHeading(nodes []types.ContentNode) string {
	for _, n := range nodes {
		if n.Role == types.RoleHeading {
			return n.PlainText()
		}
	}
	return ""
}
