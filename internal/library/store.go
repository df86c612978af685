// Package library provides Store and Tx for database access.
package library

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/vmunix/streamdash/internal/catalog"
)

// querier abstracts *sql.DB and *sql.Tx for shared query logic.
type querier interface {
	QueryRow(query string, args ...any) *sql.Row
	Query(query string, args ...any) (*sql.Rows, error)
	Exec(query string, args ...any) (sql.Result, error)
}

// Store provides access to the cached catalog.
type Store struct {
	db *sql.DB
}

// NewStore creates a new library store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// Begin starts a transaction.
func (s *Store) Begin() (*Tx, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	return &Tx{tx: tx}, nil
}

// Tx wraps a database transaction with the same methods as Store.
type Tx struct {
	tx *sql.Tx
}

// Commit commits the transaction.
func (t *Tx) Commit() error {
	return t.tx.Commit()
}

// Rollback aborts the transaction.
func (t *Tx) Rollback() error {
	return t.tx.Rollback()
}

// mapSQLiteError converts SQLite errors to custom error types.
func mapSQLiteError(err error) error {
	if err == nil {
		return nil
	}
	if err == sql.ErrNoRows {
		return ErrNotFound
	}
	// modernc.org/sqlite wraps errors; check error message for constraint violations
	errStr := err.Error()
	if strings.Contains(errStr, "UNIQUE constraint failed") ||
		strings.Contains(errStr, "PRIMARY KEY constraint failed") {
		return ErrDuplicate
	}
	if strings.Contains(errStr, "FOREIGN KEY constraint failed") ||
		strings.Contains(errStr, "CHECK constraint failed") {
		return ErrConstraint
	}
	return err
}

const entryColumns = "show_id, title, category, type, country, rating, release_date, duration, director, cast_members, description"

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func addEntry(q querier, e *catalog.Entry) error {
	raw := e.Raw()
	_, err := q.Exec(`
		INSERT INTO entries (`+entryColumns+`)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		nullable(raw[catalog.ColID]), nullable(raw[catalog.ColTitle]), nullable(raw[catalog.ColCategory]),
		nullable(raw[catalog.ColType]), nullable(raw[catalog.ColCountry]), nullable(raw[catalog.ColRating]),
		nullable(raw[catalog.ColReleaseDate]), nullable(raw[catalog.ColDuration]), nullable(raw[catalog.ColDirector]),
		nullable(raw[catalog.ColCast]), nullable(raw[catalog.ColDescription]),
	)
	if err != nil {
		return fmt.Errorf("insert entry %s: %w", e.ID, mapSQLiteError(err))
	}
	return nil
}

// AddEntry stores one entry's source row within a transaction. Entries must
// be added in dataset order for Load to reproduce the dataset.
func (t *Tx) AddEntry(e *catalog.Entry) error { return addEntry(t.tx, e) }

func clearEntries(q querier) error {
	if _, err := q.Exec("DELETE FROM entries"); err != nil {
		return fmt.Errorf("clear entries: %w", err)
	}
	return nil
}

// ClearEntries removes every cached entry within a transaction.
func (t *Tx) ClearEntries() error { return clearEntries(t.tx) }

func scanRaw(scan func(dest ...any) error) (catalog.RawRow, error) {
	cols := []string{
		catalog.ColID, catalog.ColTitle, catalog.ColCategory, catalog.ColType,
		catalog.ColCountry, catalog.ColRating, catalog.ColReleaseDate, catalog.ColDuration,
		catalog.ColDirector, catalog.ColCast, catalog.ColDescription,
	}
	values := make([]sql.NullString, len(cols))
	dest := make([]any, len(cols))
	for i := range values {
		dest[i] = &values[i]
	}
	if err := scan(dest...); err != nil {
		return nil, err
	}

	row := make(catalog.RawRow, len(cols))
	for i, col := range cols {
		if values[i].Valid {
			row[col] = values[i].String
		}
	}
	return row, nil
}

func listRows(q querier) ([]catalog.RawRow, error) {
	rows, err := q.Query("SELECT " + entryColumns + " FROM entries ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []catalog.RawRow
	for rows.Next() {
		raw, err := scanRaw(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		out = append(out, raw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return out, nil
}

// Load rebuilds the dataset from the cache, in the order it was saved.
// The result, Stats included, matches the dataset passed to ReplaceAll.
// Returns ErrEmpty if nothing has been imported.
func (s *Store) Load() (*catalog.Dataset, error) {
	rows, err := listRows(s.db)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmpty
	}
	return catalog.Normalize(rows), nil
}

// Count returns the number of cached entries.
func (s *Store) Count() (int, error) {
	var n int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM entries").Scan(&n); err != nil {
		return 0, fmt.Errorf("count entries: %w", err)
	}
	return n, nil
}

func addImport(q querier, imp *Import) error {
	now := time.Now()
	result, err := q.Exec(`
		INSERT INTO imports (source, row_count, defaulted_categories, missing_dates, imported_at)
		VALUES (?, ?, ?, ?, ?)`,
		imp.Source, imp.Rows, imp.DefaultedCategories, imp.MissingDates, now,
	)
	if err != nil {
		return fmt.Errorf("insert import: %w", mapSQLiteError(err))
	}
	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}
	imp.ID = id
	imp.ImportedAt = now
	return nil
}

// AddImport records an import within a transaction.
// Sets ID and ImportedAt on the struct.
func (t *Tx) AddImport(imp *Import) error { return addImport(t.tx, imp) }

// LastImport returns the most recent import.
// Returns ErrNotFound if nothing has been imported.
func (s *Store) LastImport() (*Import, error) {
	imp := &Import{}
	err := s.db.QueryRow(`
		SELECT id, source, row_count, defaulted_categories, missing_dates, imported_at
		FROM imports ORDER BY id DESC LIMIT 1`,
	).Scan(&imp.ID, &imp.Source, &imp.Rows, &imp.DefaultedCategories, &imp.MissingDates, &imp.ImportedAt)
	if err != nil {
		return nil, fmt.Errorf("last import: %w", mapSQLiteError(err))
	}
	return imp, nil
}

// ReplaceAll swaps the cached catalog for ds in one transaction and records
// the import. The previous catalog stays intact if any insert fails.
func (s *Store) ReplaceAll(ds *catalog.Dataset, source string) (*Import, error) {
	tx, err := s.Begin()
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	if err := tx.ClearEntries(); err != nil {
		return nil, err
	}
	for _, e := range ds.All() {
		if err := tx.AddEntry(e); err != nil {
			return nil, err
		}
	}

	st := ds.Stats()
	imp := &Import{
		Source:              source,
		Rows:                ds.Len(),
		DefaultedCategories: st.DefaultedCategories,
		MissingDates:        st.MissingDates,
	}
	if err := tx.AddImport(imp); err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit import: %w", err)
	}
	return imp, nil
}
