package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

type DB struct {
	conn *sql.DB
}

// BuildRow is one recorded pipeline run: per-collection counts, where the
// document was written, and the full snapshot so a prior good document is
// always recoverable.
type BuildRow struct {
	ID         int
	CreatedAt  string
	OutputPath string
	Categories int
	Projects   int
	Blog       int
	Clients    int
	Team       int
	Warnings   int
	DocJSON    string
}

func Open(path string) (*DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if _, err := conn.Exec(`PRAGMA journal_mode = WAL;`); err != nil {
		_ = conn.Close()
		return nil, err
	}

	db := &DB{conn: conn}
	if err := db.init(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return db, nil
}

func (d *DB) Close() error {
	return d.conn.Close()
}

func (d *DB) init() error {
	schema := `
CREATE TABLE IF NOT EXISTS builds (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  createdAt TEXT NOT NULL,
  outputPath TEXT NOT NULL,
  categories INTEGER NOT NULL,
  projects INTEGER NOT NULL,
  blog INTEGER NOT NULL,
  clients INTEGER NOT NULL,
  team INTEGER NOT NULL,
  warnings INTEGER NOT NULL,
  doc_json TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_builds_createdAt ON builds(createdAt);
`
	_, err := d.conn.Exec(schema)
	return err
}

func (d *DB) InsertBuild(row BuildRow) (int, error) {
	res, err := d.conn.Exec(
		`INSERT INTO builds (createdAt, outputPath, categories, projects, blog, clients, team, warnings, doc_json)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), row.OutputPath,
		row.Categories, row.Projects, row.Blog, row.Clients, row.Team,
		row.Warnings, row.DocJSON,
	)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func (d *DB) ListBuilds(limit int) ([]BuildRow, error) {
	if limit <= 0 {
		limit = 20
	}
	rows, err := d.conn.Query(
		`SELECT id, createdAt, outputPath, categories, projects, blog, clients, team, warnings
		 FROM builds ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []BuildRow{}
	for rows.Next() {
		var b BuildRow
		if err := rows.Scan(&b.ID, &b.CreatedAt, &b.OutputPath,
			&b.Categories, &b.Projects, &b.Blog, &b.Clients, &b.Team, &b.Warnings); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// LatestDocument returns the snapshot JSON of the most recent build, or
// sql.ErrNoRows when no build has been recorded.
func (d *DB) LatestDocument() (string, error) {
	var doc string
	err := d.conn.QueryRow(`SELECT doc_json FROM builds ORDER BY id DESC LIMIT 1`).Scan(&doc)
	return doc, err
}
