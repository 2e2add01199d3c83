package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateStoreFixture creates a workspace database at dbPath pre-seeded with
// the given key-value pairs.
func CreateStoreFixture(t *testing.T, dbPath string, pairs map[string]string) {
	t.Helper()

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	defer func() { _ = db.Close() }()

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS workspace_kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		t.Fatalf("Failed to create table: %v", err)
	}

	insertSQL := "INSERT INTO workspace_kv (key, value) VALUES (?, ?)"
	for key, value := range pairs {
		if _, err := db.Exec(insertSQL, key, value); err != nil {
			t.Fatalf("Failed to insert %s: %v", key, err)
		}
	}
}
