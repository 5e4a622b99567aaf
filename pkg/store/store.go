// Package store persists named permutation tables and encoded grids in a
// local SQLite database, by default under the user's app dir.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"noise-go/pkg/appdir"
	"noise-go/pkg/mapbuild"
	"noise-go/pkg/permtable"
	"noise-go/pkg/transform"
)

// ErrNotFound reports a name with no stored entry.
var ErrNotFound = errors.New("store: not found")

// Store keeps named permutation tables and encoded grids in SQLite. All
// methods are safe for concurrent use.
type Store struct {
	db        *sql.DB
	proc      *transform.PayloadProcessor
	saveTable *sql.Stmt
	saveGrid  *sql.Stmt
}

// TableInfo describes one stored permutation table.
type TableInfo struct {
	Name      string
	Seed      uint32
	CreatedAt time.Time
}

// GridInfo describes one stored grid.
type GridInfo struct {
	Name      string
	Width     int
	Height    int
	CreatedAt time.Time
}

const createTablesSQL = `
CREATE TABLE IF NOT EXISTS perm_tables (
    name TEXT PRIMARY KEY,
    seed INTEGER NOT NULL,
    payload BLOB NOT NULL,
    created_at INTEGER NOT NULL
);`

const createGridsSQL = `
CREATE TABLE IF NOT EXISTS grids (
    name TEXT PRIMARY KEY,
    width INTEGER NOT NULL,
    height INTEGER NOT NULL,
    payload BLOB NOT NULL,
    created_at INTEGER NOT NULL
);`

// Open opens the store at path, creating the database and schema if
// needed. An empty path uses noise.db under the app dir.
func Open(path string) (*Store, error) {
	if path == "" {
		path = appdir.Path("noise.db")
	}
	dsn := fmt.Sprintf("%s?_pragma=journal_mode=wal&_pragma=busy_timeout=5000", path)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("store: opening %s: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("store: pinging %s: %w", path, err)
	}
	for _, stmt := range []string{createTablesSQL, createGridsSQL} {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("store: creating schema: %w", err)
		}
	}
	proc, err := mapbuild.NewDefaultProcessor()
	if err != nil {
		db.Close()
		return nil, err
	}

	saveTable, err := db.Prepare(`INSERT INTO perm_tables (name, seed, payload, created_at) VALUES (?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET seed=excluded.seed, payload=excluded.payload, created_at=excluded.created_at`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("store: preparing table upsert: %w", err)
	}
	saveGrid, err := db.Prepare(`INSERT INTO grids (name, width, height, payload, created_at) VALUES (?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET width=excluded.width, height=excluded.height, payload=excluded.payload, created_at=excluded.created_at`)
	if err != nil {
		saveTable.Close()
		db.Close()
		return nil, fmt.Errorf("store: preparing grid upsert: %w", err)
	}

	return &Store{db: db, proc: proc, saveTable: saveTable, saveGrid: saveGrid}, nil
}

// Close releases the prepared statements and the database handle.
func (s *Store) Close() error {
	var firstErr error
	if err := s.saveTable.Close(); err != nil {
		firstErr = err
	}
	if err := s.saveGrid.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	if err := s.db.Close(); err != nil && firstErr == nil {
		firstErr = err
	}
	return firstErr
}

// SaveTable stores table under name along with the seed it was built from,
// replacing any previous entry.
func (s *Store) SaveTable(ctx context.Context, name string, seed uint32, table *permtable.Table) error {
	payload, err := table.MarshalBinary()
	if err != nil {
		return err
	}
	if _, err := s.saveTable.ExecContext(ctx, name, int64(seed), payload, time.Now().Unix()); err != nil {
		return fmt.Errorf("store: saving table %q: %w", name, err)
	}
	return nil
}

// LoadTable returns the named table and its seed.
func (s *Store) LoadTable(ctx context.Context, name string) (*permtable.Table, uint32, error) {
	var seed int64
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT seed, payload FROM perm_tables WHERE name = ?`, name).Scan(&seed, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, 0, fmt.Errorf("%w: table %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, 0, fmt.Errorf("store: loading table %q: %w", name, err)
	}
	var t permtable.Table
	if err := t.UnmarshalBinary(payload); err != nil {
		return nil, 0, fmt.Errorf("store: decoding table %q: %w", name, err)
	}
	return &t, uint32(seed), nil
}

// ListTables returns the stored tables ordered by name.
func (s *Store) ListTables(ctx context.Context) ([]TableInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, seed, created_at FROM perm_tables ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("store: listing tables: %w", err)
	}
	defer rows.Close()
	var infos []TableInfo
	for rows.Next() {
		var info TableInfo
		var seed, created int64
		if err := rows.Scan(&info.Name, &seed, &created); err != nil {
			return nil, err
		}
		info.Seed = uint32(seed)
		info.CreatedAt = time.Unix(created, 0)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// DeleteTable removes the named table. Deleting an absent name returns
// ErrNotFound.
func (s *Store) DeleteTable(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM perm_tables WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("store: deleting table %q: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: table %q", ErrNotFound, name)
	}
	return nil
}

// SaveGrid encodes g and stores it under name, replacing any previous
// entry.
func (s *Store) SaveGrid(ctx context.Context, name string, g *mapbuild.Grid) error {
	payload, err := mapbuild.EncodeGrid(g, s.proc)
	if err != nil {
		return err
	}
	if _, err := s.saveGrid.ExecContext(ctx, name, g.W, g.H, payload, time.Now().Unix()); err != nil {
		return fmt.Errorf("store: saving grid %q: %w", name, err)
	}
	return nil
}

// LoadGrid returns the named grid.
func (s *Store) LoadGrid(ctx context.Context, name string) (*mapbuild.Grid, error) {
	var payload []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM grids WHERE name = ?`, name).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: grid %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("store: loading grid %q: %w", name, err)
	}
	g, err := mapbuild.DecodeGrid(payload, s.proc)
	if err != nil {
		return nil, fmt.Errorf("store: decoding grid %q: %w", name, err)
	}
	return g, nil
}

// ListGrids returns the stored grids ordered by name.
func (s *Store) ListGrids(ctx context.Context) ([]GridInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT name, width, height, created_at FROM grids ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("store: listing grids: %w", err)
	}
	defer rows.Close()
	var infos []GridInfo
	for rows.Next() {
		var info GridInfo
		var created int64
		if err := rows.Scan(&info.Name, &info.Width, &info.Height, &created); err != nil {
			return nil, err
		}
		info.CreatedAt = time.Unix(created, 0)
		infos = append(infos, info)
	}
	return infos, rows.Err()
}

// DeleteGrid removes the named grid. Deleting an absent name returns
// ErrNotFound.
func (s *Store) DeleteGrid(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM grids WHERE name = ?`, name)
	if err != nil {
		return fmt.Errorf("store: deleting grid %q: %w", name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: grid %q", ErrNotFound, name)
	}
	return nil
}
