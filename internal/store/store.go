// Package store persists saved searches, the advanced filter form and the
// active query in a SQLite database.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"github.com/atomicstack/search-menu/internal/query"
	"github.com/atomicstack/search-menu/internal/search"
)

var (
	// ErrNotFound is returned when no saved search has the requested hash.
	ErrNotFound = errors.New("saved search not found")
	// ErrEmptyTitle is returned when renaming to a blank title.
	ErrEmptyTitle = errors.New("title must not be empty")
)

const activeQueryKey = "active_query"

const schema = `
CREATE TABLE IF NOT EXISTS saved_searches (
	id             INTEGER PRIMARY KEY AUTOINCREMENT,
	hash           INTEGER NOT NULL UNIQUE,
	title          TEXT    NOT NULL,
	query          TEXT    NOT NULL,
	pending_action TEXT    NOT NULL DEFAULT '',
	created_at     INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS advanced_filters (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS search_state (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

// Store is a handle on the search database. It is safe for concurrent use.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens (creating if needed) the database at path and applies the schema.
func Open(ctx context.Context, path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("store: empty database path")
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}
	dsn := fmt.Sprintf("file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("cannot open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db, path: path}, nil
}

// Path returns the database file path.
func (s *Store) Path() string { return s.path }

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavedSearches returns all saved searches in creation order.
func (s *Store) SavedSearches(ctx context.Context) ([]search.SavedSearch, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT hash, title, query, pending_action
		FROM saved_searches
		ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("query saved searches: %w", err)
	}
	defer rows.Close()

	var saved []search.SavedSearch
	for rows.Next() {
		var entry search.SavedSearch
		var pending string
		if err := rows.Scan(&entry.Hash, &entry.Title, &entry.Query, &pending); err != nil {
			return nil, fmt.Errorf("scan saved search: %w", err)
		}
		entry.PendingAction = search.PendingAction(pending)
		saved = append(saved, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate saved searches: %w", err)
	}
	return saved, nil
}

// SaveSearch stores raw under its canonical form. Saving an equivalent query
// again replaces the title and clears any pending action. A blank title
// defaults to the canonical query.
func (s *Store) SaveSearch(ctx context.Context, title, raw string) (search.SavedSearch, error) {
	canonical := query.Parse(raw).Canonical()
	if title == "" {
		title = canonical
	}
	entry := search.SavedSearch{
		Hash:  query.HashString(canonical),
		Title: title,
		Query: canonical,
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO saved_searches (hash, title, query, pending_action, created_at)
		VALUES (?, ?, ?, '', ?)
		ON CONFLICT(hash) DO UPDATE SET
			title = excluded.title,
			pending_action = ''`,
		entry.Hash, entry.Title, entry.Query, time.Now().UnixNano())
	if err != nil {
		return search.SavedSearch{}, fmt.Errorf("save search %q: %w", title, err)
	}
	return entry, nil
}

// SavedSearch returns the saved search with hash.
func (s *Store) SavedSearch(ctx context.Context, hash int64) (search.SavedSearch, error) {
	var entry search.SavedSearch
	var pending string
	err := s.db.QueryRowContext(ctx, `
		SELECT hash, title, query, pending_action
		FROM saved_searches WHERE hash = ?`, hash).
		Scan(&entry.Hash, &entry.Title, &entry.Query, &pending)
	if errors.Is(err, sql.ErrNoRows) {
		return search.SavedSearch{}, fmt.Errorf("saved search %d: %w", hash, ErrNotFound)
	}
	if err != nil {
		return search.SavedSearch{}, fmt.Errorf("load saved search %d: %w", hash, err)
	}
	entry.PendingAction = search.PendingAction(pending)
	return entry, nil
}

// RenameSavedSearch changes the title of a saved search.
func (s *Store) RenameSavedSearch(ctx context.Context, hash int64, title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	return s.updateOne(ctx, "rename", hash,
		`UPDATE saved_searches SET title = ?, pending_action = '' WHERE hash = ?`, title, hash)
}

// MarkPending records an in-flight action against a saved search.
func (s *Store) MarkPending(ctx context.Context, hash int64, action search.PendingAction) error {
	return s.updateOne(ctx, "mark pending", hash,
		`UPDATE saved_searches SET pending_action = ? WHERE hash = ?`, string(action), hash)
}

// DeleteSavedSearch removes a saved search.
func (s *Store) DeleteSavedSearch(ctx context.Context, hash int64) error {
	return s.updateOne(ctx, "delete", hash, `DELETE FROM saved_searches WHERE hash = ?`, hash)
}

func (s *Store) updateOne(ctx context.Context, op string, hash int64, stmt string, args ...any) error {
	res, err := s.db.ExecContext(ctx, stmt, args...)
	if err != nil {
		return fmt.Errorf("%s saved search %d: %w", op, hash, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s saved search %d: %w", op, hash, err)
	}
	if n == 0 {
		return fmt.Errorf("%s saved search %d: %w", op, hash, ErrNotFound)
	}
	return nil
}

// ClearAllFilters resets the advanced filter form and the active query.
func (s *Store) ClearAllFilters(ctx context.Context) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM advanced_filters`); err != nil {
			return fmt.Errorf("clear advanced filters: %w", err)
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM search_state WHERE key = ?`, activeQueryKey); err != nil {
			return fmt.Errorf("clear active query: %w", err)
		}
		return nil
	})
}

// UpdateAdvancedFilters replaces the advanced filter form state.
func (s *Store) UpdateAdvancedFilters(ctx context.Context, values query.FilterFormValues) error {
	return s.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM advanced_filters`); err != nil {
			return fmt.Errorf("reset advanced filters: %w", err)
		}
		for _, key := range values.Keys() {
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO advanced_filters (key, value) VALUES (?, ?)`, key, values[key]); err != nil {
				return fmt.Errorf("store advanced filter %s: %w", key, err)
			}
		}
		return nil
	})
}

// AdvancedFilters returns the advanced filter form state.
func (s *Store) AdvancedFilters(ctx context.Context) (query.FilterFormValues, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value FROM advanced_filters`)
	if err != nil {
		return nil, fmt.Errorf("query advanced filters: %w", err)
	}
	defer rows.Close()
	values := query.FilterFormValues{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan advanced filter: %w", err)
		}
		values[key] = value
	}
	return values, rows.Err()
}

// ActiveQuery returns the active query string, or "" when none is set.
func (s *Store) ActiveQuery(ctx context.Context) (string, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM search_state WHERE key = ?`, activeQueryKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("load active query: %w", err)
	}
	return value, nil
}

// SetActiveQuery stores raw, in canonical form, as the active query.
func (s *Store) SetActiveQuery(ctx context.Context, raw string) error {
	canonical := query.Parse(raw).Canonical()
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO search_state (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		activeQueryKey, canonical)
	if err != nil {
		return fmt.Errorf("store active query: %w", err)
	}
	return nil
}

func (s *Store) inTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
