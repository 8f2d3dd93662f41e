package storage

import (
	"path/filepath"
	"testing"
)

// testDB writes the sample rows to JSONL, opens a fresh database and
// rebuilds it from the file.
func testDB(t *testing.T) *DB {
	t.Helper()
	dir := t.TempDir()

	jsonlPath := filepath.Join(dir, "rows.jsonl")
	if err := WriteAll(jsonlPath, sampleRows()); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	db, err := OpenDB(filepath.Join(dir, "rows.db"))
	if err != nil {
		t.Fatalf("OpenDB failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	n, err := db.RebuildFromJSONL(jsonlPath)
	if err != nil {
		t.Fatalf("RebuildFromJSONL failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows rebuilt, got %d", n)
	}

	return db
}

func TestCount(t *testing.T) {
	db := testDB(t)

	count, err := db.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2, got %d", count)
	}
}

func TestListAll(t *testing.T) {
	db := testDB(t)

	rows, err := db.ListAll(0)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0].Title != "Gut Microbiome Dynamics" {
		t.Errorf("wrong first row: %+v", rows[0])
	}
	if rows[1].Email != "h.mueller@agrar.de" {
		t.Errorf("wrong second row: %+v", rows[1])
	}
}

func TestListAllLimit(t *testing.T) {
	db := testDB(t)

	rows, err := db.ListAll(1)
	if err != nil {
		t.Fatalf("ListAll failed: %v", err)
	}
	if len(rows) != 1 {
		t.Errorf("expected 1 row, got %d", len(rows))
	}
}

func TestSearchFullText(t *testing.T) {
	db := testDB(t)

	rows, err := db.Search("microbiome", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 result, got %d", len(rows))
	}
	if rows[0].Title != "Gut Microbiome Dynamics" {
		t.Errorf("wrong result: %+v", rows[0])
	}
}

func TestSearchFieldTitle(t *testing.T) {
	db := testDB(t)

	rows, err := db.SearchField("title", "carbon", 10)
	if err != nil {
		t.Fatalf("SearchField failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Title != "Soil Carbon Flux" {
		t.Errorf("unexpected results: %+v", rows)
	}
}

func TestSearchFieldAuthor(t *testing.T) {
	db := testDB(t)

	rows, err := db.SearchField("author", "tanaka", 10)
	if err != nil {
		t.Fatalf("SearchField failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Email != "y.tanaka@univ.ac.jp" {
		t.Errorf("unexpected results: %+v", rows)
	}
}

func TestSearchFieldEmailSubstring(t *testing.T) {
	db := testDB(t)

	rows, err := db.SearchField("email", "@agrar.de", 10)
	if err != nil {
		t.Fatalf("SearchField failed: %v", err)
	}
	if len(rows) != 1 || rows[0].Email != "h.mueller@agrar.de" {
		t.Errorf("unexpected results: %+v", rows)
	}
}

func TestSearchFieldUnknown(t *testing.T) {
	db := testDB(t)

	if _, err := db.SearchField("journal", "ecol", 10); err == nil {
		t.Fatal("expected error for unknown field")
	}
}

func TestSearchNoResults(t *testing.T) {
	db := testDB(t)

	rows, err := db.Search("zzzznope", 10)
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no results, got %+v", rows)
	}
}

func TestRebuildReplacesExistingRows(t *testing.T) {
	dir := t.TempDir()
	jsonlPath := filepath.Join(dir, "rows.jsonl")

	if err := WriteAll(jsonlPath, sampleRows()); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}

	db, err := OpenDB(filepath.Join(dir, "rows.db"))
	if err != nil {
		t.Fatalf("OpenDB failed: %v", err)
	}
	defer db.Close()

	if _, err := db.RebuildFromJSONL(jsonlPath); err != nil {
		t.Fatalf("first rebuild failed: %v", err)
	}

	// Shrink the source file and rebuild; the cache must not keep stale
	// rows from the first pass.
	if err := WriteAll(jsonlPath, sampleRows()[:1]); err != nil {
		t.Fatalf("WriteAll failed: %v", err)
	}
	n, err := db.RebuildFromJSONL(jsonlPath)
	if err != nil {
		t.Fatalf("second rebuild failed: %v", err)
	}
	if n != 1 {
		t.Errorf("expected 1 row, got %d", n)
	}

	count, err := db.Count()
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("expected count 1, got %d", count)
	}
}
