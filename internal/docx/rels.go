// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
)

// relationships is the subset of the OPC relationships part the parser
// needs: relationship ID to target URI, for hyperlink resolution.
type relationships struct {
	Rels []struct {
		ID     string `xml:"Id,attr"`
		Target string `xml:"Target,attr"`
	} `xml:"Relationship"`
}

// parseRelationships maps relationship IDs to hyperlink targets. A
// document without a relationships part simply has no external links.
func parseRelationships(zr *zip.Reader) (map[string]string, error) {
	rc, found, err := openMember(zr, relsMember)
	if err != nil {
		return nil, err
	}
	if !found {
		return map[string]string{}, nil
	}
	defer rc.Close()

	var rels relationships
	if err := xml.NewDecoder(rc).Decode(&rels); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", relsMember, err)
	}

	links := make(map[string]string, len(rels.Rels))
	for _, rel := range rels.Rels {
		if rel.ID != "" && rel.Target != "" {
			links[rel.ID] = rel.Target
		}
	}
	return links, nil
}
