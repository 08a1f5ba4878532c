// Package genepanel persists the low-penetrance gene panel that
// matches_autosomal_dominant's low_penetrance_genes modifier consumes,
// backed by an embedded DuckDB database the same way internal/duckdb
// caches vibe-vep's transcript annotations: a queryable store instead of
// an in-memory literal passed around by callers.
package genepanel

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb"
)

// Store manages a DuckDB-backed table of low-penetrance gene symbols.
type Store struct {
	db *sql.DB
}

// Open opens or creates a DuckDB database at path. An empty path opens
// an in-memory database, useful for tests and for a CLI invocation that
// never persists its panel between runs.
func Open(path string) (*Store, error) {
	if path != "" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create genepanel directory: %w", err)
			}
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, fmt.Errorf("open genepanel duckdb: %w", err)
	}

	s := &Store{db: db}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure genepanel schema: %w", err)
	}
	return s, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) ensureSchema() error {
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS low_penetrance_genes (
		gene      VARCHAR PRIMARY KEY,
		rationale VARCHAR
	)`)
	return err
}

// Add inserts or updates gene with its rationale.
func (s *Store) Add(gene, rationale string) error {
	if gene == "" {
		return fmt.Errorf("genepanel: gene symbol must not be empty")
	}
	_, err := s.db.Exec(
		`INSERT INTO low_penetrance_genes (gene, rationale) VALUES (?, ?)
		 ON CONFLICT (gene) DO UPDATE SET rationale = excluded.rationale`,
		gene, rationale,
	)
	if err != nil {
		return fmt.Errorf("genepanel: add %q: %w", gene, err)
	}
	return nil
}

// Contains reports whether gene is in the panel.
func (s *Store) Contains(gene string) (bool, error) {
	var count int
	err := s.db.QueryRow(
		`SELECT COUNT(*) FROM low_penetrance_genes WHERE gene = ?`, gene,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("genepanel: query %q: %w", gene, err)
	}
	return count > 0, nil
}

// AsSet loads the entire panel into the map[gene]bool shape the
// inheritance classifiers' low_penetrance_genes parameter expects.
func (s *Store) AsSet() (map[string]bool, error) {
	rows, err := s.db.Query(`SELECT gene FROM low_penetrance_genes`)
	if err != nil {
		return nil, fmt.Errorf("genepanel: list: %w", err)
	}
	defer rows.Close()

	out := make(map[string]bool)
	for rows.Next() {
		var gene string
		if err := rows.Scan(&gene); err != nil {
			return nil, fmt.Errorf("genepanel: scan: %w", err)
		}
		out[gene] = true
	}
	return out, rows.Err()
}
