// Package storage opens the database behind a vault, applies the embedded
// goose migrations and returns the matching vault.Store.
//
// Two backends are supported:
//   - SQLite (modernc.org/sqlite): the client's local fallback vault and
//     single-node servers. DSN "sqlite://path", "file:..." or a bare path.
//   - PostgreSQL (pgx): "postgres://..." or "postgresql://...".
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"io/fs"
	"strings"

	"github.com/dmitrijs2005/locksafe/internal/storage/kvstore"
	"github.com/dmitrijs2005/locksafe/internal/storage/migrations"
	"github.com/dmitrijs2005/locksafe/internal/storage/pgstore"
	"github.com/dmitrijs2005/locksafe/internal/vault"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

type Kind string

const (
	KindSQLite   Kind = "sqlite"
	KindPostgres Kind = "postgres"
)

// DetectKind picks the backend from the DSN shape.
func DetectKind(dsn string) Kind {
	lower := strings.ToLower(dsn)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return KindPostgres
	}
	return KindSQLite
}

// DB bundles the open handle with its vault store.
type DB struct {
	Kind  Kind
	SQL   *sql.DB
	Store vault.Store
}

func (d *DB) Close() error {
	return d.SQL.Close()
}

// migrate is a seam for tests that cannot run goose against a mock.
var migrate = func(ctx context.Context, dialect goose.Dialect, db *sql.DB, fsys fs.FS) error {
	p, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return err
	}
	_, err = p.Up(ctx)
	return err
}

// Open connects, migrates and wraps the database named by dsn.
func Open(ctx context.Context, dsn string) (*DB, error) {
	kind := DetectKind(dsn)

	var (
		db  *sql.DB
		err error
	)
	switch kind {
	case KindPostgres:
		db, err = sql.Open("pgx", dsn)
	default:
		db, err = sql.Open("sqlite", sqlitePath(dsn))
		if err == nil {
			// single writer
			db.SetMaxOpenConns(1)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", kind, err)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", kind, err)
	}

	if err := Migrate(ctx, kind, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	out := &DB{Kind: kind, SQL: db}
	if kind == KindPostgres {
		out.Store = pgstore.New(db)
	} else {
		out.Store = kvstore.New(db)
	}
	return out, nil
}

// Migrate applies every pending migration for kind.
func Migrate(ctx context.Context, kind Kind, db *sql.DB) error {
	var (
		dialect goose.Dialect
		fsys    fs.FS
		err     error
	)
	switch kind {
	case KindPostgres:
		dialect = goose.DialectPostgres
		fsys, err = fs.Sub(migrations.Postgres, "postgres")
	default:
		dialect = goose.DialectSQLite3
		fsys, err = fs.Sub(migrations.SQLite, "sqlite")
	}
	if err != nil {
		return err
	}

	if err := migrate(ctx, dialect, db, fsys); err != nil {
		return fmt.Errorf("migrate %s: %w", kind, err)
	}
	return nil
}

func sqlitePath(dsn string) string {
	return strings.TrimPrefix(dsn, "sqlite://")
}
