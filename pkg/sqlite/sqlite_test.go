package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	"dothis/pkg/sqlite"
)

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("Memory", func(t *testing.T) {
		db, err := sqlite.Open(ctx, sqlite.MemoryPath)
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		defer db.Close()

		if _, err := db.ExecContext(ctx, `CREATE TABLE t (v TEXT)`); err != nil {
			t.Fatalf("create table: %v", err)
		}
		if _, err := db.ExecContext(ctx, `INSERT INTO t (v) VALUES ('x')`); err != nil {
			t.Fatalf("insert: %v", err)
		}
		var n int
		if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM t`).Scan(&n); err != nil || n != 1 {
			t.Fatalf("count = %d, %v", n, err)
		}
	})

	t.Run("File in new directory", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "dothis.db")
		db, err := sqlite.Open(ctx, path)
		if err != nil {
			t.Fatalf("Open() error = %v", err)
		}
		db.Close()
	})
}
