package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/gophjournal/internal/client/migrations"
	"github.com/dmitrijs2005/gophjournal/internal/filex"

	_ "modernc.org/sqlite"
)

// MemoryDSN opens a private in-memory database.
const MemoryDSN = ":memory:"

// RunMigrations applies the embedded goose migrations. It is idempotent.
// Each call builds its own provider, so concurrent callers share no goose
// state.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	provider, err := goose.NewProvider(goose.DialectSQLite3, db, migrations.Migrations)
	if err != nil {
		return fmt.Errorf("failed to create goose provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// InitDatabase opens the SQLite database at dsn and brings its schema up to
// date. A file path DSN gets its parent directory created first.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	if isFilePath(dsn) {
		if err := filex.EnsureParentDir(dsn); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// SQLite allows a single writer; one connection also keeps an in-memory
	// database alive and shared.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return db, nil
}

func isFilePath(dsn string) bool {
	if dsn == "" || dsn == MemoryDSN {
		return false
	}
	return len(dsn) < 5 || dsn[:5] != "file:"
}
