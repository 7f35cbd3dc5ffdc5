// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package catalog persists a searchable index of converted documents.
package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/wordmark/pkg/types"
)

const dbFile = "catalog.db"

// Store manages the conversion catalog SQLite database.
type Store struct {
	db         *sql.DB
	maxResults int
}

// Entry describes one converted document in the catalog.
type Entry struct {
	// ID is a slug derived from the source filename.
	ID string `json:"id" yaml:"id"`

	// SourcePath and OutputPath are the conversion endpoints.
	SourcePath string `json:"source_path" yaml:"source_path"`
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Title is the document title (first heading), may be empty.
	Title string `json:"title" yaml:"title"`

	// Status records the conversion outcome.
	Status types.ConversionStatus `json:"status" yaml:"status"`

	// Nodes is the number of content nodes the document produced.
	Nodes int `json:"nodes" yaml:"nodes"`

	// ConvertedAt is the conversion timestamp.
	ConvertedAt time.Time `json:"converted_at" yaml:"converted_at"`

	// SourceModTime is the source file's modification time, used to
	// skip re-recording unchanged documents.
	SourceModTime time.Time `json:"source_mod_time" yaml:"source_mod_time"`
}

// RecordOutcome reports what Record did with an entry.
type RecordOutcome string

const (
	OutcomeRecorded RecordOutcome = "recorded"
	OutcomeUpdated  RecordOutcome = "updated"
	OutcomeSkipped  RecordOutcome = "skipped"
)

// NewStore opens or creates the catalog database at
// cfg.CatalogDir/catalog.db, creating the schema if needed.
func NewStore(cfg types.CatalogConfig) (*Store, error) {
	dir := cfg.CatalogDir
	if dir == "" {
		dir = "catalog"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating catalog directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening catalog database: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 20
	}

	s := &Store{db: db, maxResults: maxResults}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS documents (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			id TEXT NOT NULL UNIQUE,
			source_path TEXT NOT NULL,
			output_path TEXT,
			title TEXT,
			status TEXT NOT NULL,
			nodes INTEGER,
			body TEXT,
			converted_at TEXT,
			source_mod_time TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_documents_status ON documents(status)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	// FTS5 virtual table with triggers for sync.
	var ftsExists int
	if err := s.db.QueryRow(
		`SELECT count(*) FROM sqlite_master WHERE type='table' AND name='documents_fts'`,
	).Scan(&ftsExists); err != nil {
		return fmt.Errorf("checking FTS table: %w", err)
	}

	if ftsExists == 0 {
		ftsStatements := []string{
			`CREATE VIRTUAL TABLE documents_fts USING fts5(title, body, content=documents, content_rowid=rowid)`,
			`CREATE TRIGGER documents_ai AFTER INSERT ON documents BEGIN
				INSERT INTO documents_fts(rowid, title, body) VALUES (new.rowid, new.title, new.body);
			END`,
			`CREATE TRIGGER documents_ad AFTER DELETE ON documents BEGIN
				INSERT INTO documents_fts(documents_fts, rowid, title, body) VALUES('delete', old.rowid, old.title, old.body);
			END`,
			`CREATE TRIGGER documents_au AFTER UPDATE ON documents BEGIN
				INSERT INTO documents_fts(documents_fts, rowid, title, body) VALUES('delete', old.rowid, old.title, old.body);
				INSERT INTO documents_fts(rowid, title, body) VALUES (new.rowid, new.title, new.body);
			END`,
		}
		for _, stmt := range ftsStatements {
			if _, err := s.db.Exec(stmt); err != nil {
				return fmt.Errorf("creating FTS infrastructure: %w", err)
			}
		}
	}

	return nil
}

// Record stores a conversion result along with the converted body text.
// An entry whose source modification time is unchanged is skipped;
// an existing entry with a newer source is updated in place.
func (s *Store) Record(ctx context.Context, e Entry, body string) (RecordOutcome, error) {
	if e.ID == "" {
		return "", fmt.Errorf("entry ID required")
	}

	modTime := e.SourceModTime.UTC().Format(time.RFC3339Nano)

	var storedModTime string
	err := s.db.QueryRowContext(ctx,
		`SELECT source_mod_time FROM documents WHERE id = ?`, e.ID,
	).Scan(&storedModTime)

	exists := err == nil
	if err != nil && err != sql.ErrNoRows {
		return "", fmt.Errorf("checking catalog entry: %w", err)
	}
	if exists && storedModTime == modTime {
		return OutcomeSkipped, nil
	}

	convertedAt := e.ConvertedAt.UTC().Format(time.RFC3339)

	if exists {
		_, err = s.db.ExecContext(ctx,
			`UPDATE documents SET source_path = ?, output_path = ?, title = ?, status = ?,
				nodes = ?, body = ?, converted_at = ?, source_mod_time = ?
			 WHERE id = ?`,
			e.SourcePath, e.OutputPath, e.Title, string(e.Status),
			e.Nodes, body, convertedAt, modTime, e.ID)
		if err != nil {
			return "", fmt.Errorf("updating catalog entry: %w", err)
		}
		return OutcomeUpdated, nil
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO documents (id, source_path, output_path, title, status, nodes, body, converted_at, source_mod_time)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.SourcePath, e.OutputPath, e.Title, string(e.Status),
		e.Nodes, body, convertedAt, modTime)
	if err != nil {
		return "", fmt.Errorf("inserting catalog entry: %w", err)
	}
	return OutcomeRecorded, nil
}

// QueryResult is a catalog entry with a search snippet.
type QueryResult struct {
	Entry   `yaml:",inline"`
	Snippet string `json:"snippet,omitempty" yaml:"snippet,omitempty"`
}

// Search runs an FTS5 full-text query over document titles and bodies,
// ranked by relevance.
func (s *Store) Search(ctx context.Context, query string) ([]QueryResult, error) {
	if query == "" {
		return nil, fmt.Errorf("search query required")
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT d.id, d.source_path, d.output_path, d.title, d.status, d.nodes,
			d.converted_at, d.source_mod_time,
			snippet(documents_fts, 1, '[', ']', '…', 12)
		 FROM documents_fts
		 JOIN documents d ON d.rowid = documents_fts.rowid
		 WHERE documents_fts MATCH ?
		 ORDER BY documents_fts.rank
		 LIMIT ?`,
		query, s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("querying catalog: %w", err)
	}
	defer rows.Close()

	return scanResults(rows, true)
}

// List returns catalog entries, newest conversions first.
func (s *Store) List(ctx context.Context) ([]QueryResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, source_path, output_path, title, status, nodes,
			converted_at, source_mod_time, ''
		 FROM documents
		 ORDER BY converted_at DESC, id
		 LIMIT ?`,
		s.maxResults)
	if err != nil {
		return nil, fmt.Errorf("listing catalog: %w", err)
	}
	defer rows.Close()

	return scanResults(rows, false)
}

func scanResults(rows *sql.Rows, withSnippet bool) ([]QueryResult, error) {
	var results []QueryResult
	for rows.Next() {
		var (
			r           QueryResult
			status      string
			nodes       sql.NullInt64
			convertedAt sql.NullString
			modTime     sql.NullString
			snippet     sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.SourcePath, &r.OutputPath, &r.Title,
			&status, &nodes, &convertedAt, &modTime, &snippet); err != nil {
			return nil, fmt.Errorf("scanning catalog row: %w", err)
		}
		r.Status = types.ConversionStatus(status)
		r.Nodes = int(nodes.Int64)
		if convertedAt.Valid {
			r.ConvertedAt, _ = time.Parse(time.RFC3339, convertedAt.String)
		}
		if modTime.Valid {
			r.SourceModTime, _ = time.Parse(time.RFC3339Nano, modTime.String)
		}
		if withSnippet && snippet.Valid {
			r.Snippet = snippet.String
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
