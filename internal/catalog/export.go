// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import (
	"context"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"
)

const exportLimit = 100000

// Export writes every catalog entry to w as a YAML document, newest
// conversions first.
func (s *Store) Export(ctx context.Context, w io.Writer) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_path, output_path, title, status, nodes,
			converted_at, source_mod_time, ''
		 FROM documents
		 ORDER BY converted_at DESC, id
		 LIMIT ?`,
		exportLimit)
	if err != nil {
		return fmt.Errorf("reading catalog for export: %w", err)
	}
	defer rows.Close()

	results, err := scanResults(rows, false)
	if err != nil {
		return err
	}

	entries := make([]Entry, len(results))
	for i, r := range results {
		entries[i] = r.Entry
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()
	if err := enc.Encode(struct {
		Documents []Entry `yaml:"documents"`
	}{Documents: entries}); err != nil {
		return fmt.Errorf("encoding catalog export: %w", err)
	}
	return nil
}
