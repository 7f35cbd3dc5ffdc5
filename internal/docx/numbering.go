// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"archive/zip"
	"encoding/xml"
	"fmt"
)

// numberingXML is the subset of word/numbering.xml needed to classify a
// list: each w:numId refers to an abstract definition whose level-0
// numFmt is "bullet" or a counted format such as "decimal".
type numberingXML struct {
	AbstractNums []struct {
		ID     string `xml:"abstractNumId,attr"`
		Levels []struct {
			ILvl   string `xml:"ilvl,attr"`
			NumFmt struct {
				Val string `xml:"val,attr"`
			} `xml:"numFmt"`
		} `xml:"lvl"`
	} `xml:"abstractNum"`
	Nums []struct {
		ID       string `xml:"numId,attr"`
		Abstract struct {
			Val string `xml:"val,attr"`
		} `xml:"abstractNumId"`
	} `xml:"num"`
}

// parseNumbering maps numbering IDs to list kind: true for ordered
// (counted) lists, false for bulleted ones. IDs whose definition cannot
// be resolved are absent from the map.
func parseNumbering(zr *zip.Reader) (map[string]bool, error) {
	rc, found, err := openMember(zr, numberingMember)
	if err != nil {
		return nil, err
	}
	if !found {
		return map[string]bool{}, nil
	}
	defer rc.Close()

	var numbering numberingXML
	if err := xml.NewDecoder(rc).Decode(&numbering); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", numberingMember, err)
	}

	// Level-0 format per abstract definition; nested levels are out of
	// scope, items render flat.
	formats := make(map[string]string, len(numbering.AbstractNums))
	for _, abs := range numbering.AbstractNums {
		for _, lvl := range abs.Levels {
			if lvl.ILvl == "0" {
				formats[abs.ID] = lvl.NumFmt.Val
				break
			}
		}
	}

	ordered := make(map[string]bool, len(numbering.Nums))
	for _, num := range numbering.Nums {
		format, ok := formats[num.Abstract.Val]
		if !ok || format == "" {
			continue
		}
		ordered[num.ID] = format != "bullet" && format != "none"
	}
	return ordered, nil
}
