package storage

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/talmon-lab/ristab/internal/row"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection.
type DB struct {
	db *sql.DB
}

// selectRowFields contains the standard field list for SELECT queries.
const selectRowFields = `title, year, journal, corresponding_author,
	email, authors, keywords, source_file`

// OpenDB opens or creates a SQLite database at the given path.
func OpenDB(path string) (*DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	if err := createSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &DB{db: db}, nil
}

// Close closes the database connection.
func (d *DB) Close() error {
	return d.db.Close()
}

// createSchema creates the database schema if it doesn't exist.
func createSchema(db *sql.DB) error {
	schema := `
		-- Main rows table, one row per (record, corresponding email)
		CREATE TABLE IF NOT EXISTS rows (
			id INTEGER PRIMARY KEY,
			title TEXT NOT NULL,
			year TEXT,
			journal TEXT,
			corresponding_author TEXT,
			email TEXT NOT NULL,
			authors TEXT,
			keywords TEXT,
			source_file TEXT
		);

		-- Index for email lookups
		CREATE INDEX IF NOT EXISTS idx_rows_email ON rows(email);

		-- Full-text search virtual table (standalone, not external content)
		CREATE VIRTUAL TABLE IF NOT EXISTS rows_fts USING fts5(
			row_id,
			title,
			corresponding_author,
			authors,
			keywords
		);
	`

	_, err := db.Exec(schema)
	return err
}

// RebuildFromJSONL clears the database and rebuilds it from a JSONL file.
func (d *DB) RebuildFromJSONL(jsonlPath string) (int, error) {
	rows, err := ReadAll(jsonlPath)
	if err != nil {
		return 0, fmt.Errorf("reading JSONL: %w", err)
	}

	if _, err := d.db.Exec("DELETE FROM rows"); err != nil {
		return 0, fmt.Errorf("clearing rows table: %w", err)
	}
	if _, err := d.db.Exec("DELETE FROM rows_fts"); err != nil {
		return 0, fmt.Errorf("clearing rows_fts table: %w", err)
	}

	rowsStmt, err := d.db.Prepare(`
		INSERT INTO rows (
			id, title, year, journal, corresponding_author,
			email, authors, keywords, source_file
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing rows insert: %w", err)
	}
	defer rowsStmt.Close()

	ftsStmt, err := d.db.Prepare(`
		INSERT INTO rows_fts (row_id, title, corresponding_author, authors, keywords)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("preparing fts insert: %w", err)
	}
	defer ftsStmt.Close()

	for i, r := range rows {
		id := i + 1

		_, err = rowsStmt.Exec(
			id, r.Title, r.Year, r.Journal, r.CorrespondingAuthor,
			r.Email, r.Authors, r.Keywords, r.SourceFile,
		)
		if err != nil {
			return 0, fmt.Errorf("inserting row %d: %w", id, err)
		}

		_, err = ftsStmt.Exec(id, r.Title, r.CorrespondingAuthor, r.Authors, r.Keywords)
		if err != nil {
			return 0, fmt.Errorf("inserting fts for row %d: %w", id, err)
		}
	}

	return len(rows), nil
}

// Search performs a full-text search and returns matching rows.
func (d *DB) Search(query string, limit int) ([]row.Row, error) {
	ftsQuery := prepareFTSQuery(query)

	rows, err := d.db.Query(`
		SELECT `+selectRowFields+`
		FROM rows
		WHERE id IN (SELECT row_id FROM rows_fts WHERE rows_fts MATCH ?)
		ORDER BY id
		LIMIT ?`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching: %w", err)
	}
	defer rows.Close()

	return scanRows(rows)
}

// SearchField performs a search on a specific field. Title and author
// searches go through FTS; email is matched by SQL substring since FTS
// tokenization splits addresses apart.
func (d *DB) SearchField(field, value string, limit int) ([]row.Row, error) {
	var ftsQuery string

	switch field {
	case "author":
		ftsQuery = "corresponding_author:" + prepareFTSQuery(value)
	case "title":
		ftsQuery = "title:" + prepareFTSQuery(value)
	case "keyword":
		ftsQuery = "keywords:" + prepareFTSQuery(value)
	case "email":
		return d.searchEmail(value, limit)
	default:
		return nil, fmt.Errorf("unknown search field: %s", field)
	}

	rows, err := d.db.Query(`
		SELECT `+selectRowFields+`
		FROM rows
		WHERE id IN (SELECT row_id FROM rows_fts WHERE rows_fts MATCH ?)
		ORDER BY id
		LIMIT ?
	`, ftsQuery, limit)
	if err != nil {
		return nil, fmt.Errorf("searching %s: %w", field, err)
	}
	defer rows.Close()

	return scanRows(rows)
}

func (d *DB) searchEmail(value string, limit int) ([]row.Row, error) {
	rows, err := d.db.Query(`
		SELECT `+selectRowFields+`
		FROM rows
		WHERE email LIKE ?
		ORDER BY id
		LIMIT ?
	`, "%"+strings.ToLower(strings.TrimSpace(value))+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("searching email: %w", err)
	}
	defer rows.Close()

	return scanRows(rows)
}

// ListAll returns all rows in insertion order, optionally limited.
func (d *DB) ListAll(limit int) ([]row.Row, error) {
	query := `SELECT ` + selectRowFields + ` FROM rows ORDER BY id`
	var args []interface{}

	if limit > 0 {
		query += " LIMIT ?"
		args = []interface{}{limit}
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing rows: %w", err)
	}
	defer rows.Close()

	return scanRows(rows)
}

// Count returns the total number of rows.
func (d *DB) Count() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM rows").Scan(&count)
	return count, err
}

func scanRows(rows *sql.Rows) ([]row.Row, error) {
	var out []row.Row
	for rows.Next() {
		var r row.Row
		var year, journal, author, authors, keywords, source sql.NullString

		err := rows.Scan(
			&r.Title, &year, &journal, &author,
			&r.Email, &authors, &keywords, &source,
		)
		if err != nil {
			return nil, err
		}

		r.Year = year.String
		r.Journal = journal.String
		r.CorrespondingAuthor = author.String
		r.Authors = authors.String
		r.Keywords = keywords.String
		r.SourceFile = source.String

		out = append(out, r)
	}
	return out, rows.Err()
}

// prepareFTSQuery escapes special characters for FTS5 queries.
func prepareFTSQuery(query string) string {
	// FTS5 uses double quotes for phrase matching
	query = strings.TrimSpace(query)
	if query == "" {
		return query
	}

	if strings.ContainsAny(query, "\"*+-:(){}[]^~@.") {
		query = strings.ReplaceAll(query, "\"", "\"\"")
		return "\"" + query + "\""
	}

	return query
}
