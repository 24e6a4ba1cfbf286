package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

//go:embed sql/*.sql
var migrations embed.FS

// Migrate applies the embedded schema files in lexical order.
// Every statement must be idempotent: it runs on each startup.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	files, err := SchemaFiles()
	if err != nil {
		return fmt.Errorf("list migrations: %w", err)
	}

	for _, f := range files {
		stmt, err := migrations.ReadFile(f)
		if err != nil {
			return fmt.Errorf("read migration %s: %w", f, err)
		}
		if _, err := pool.Exec(ctx, string(stmt)); err != nil {
			return fmt.Errorf("apply migration %s: %w", f, err)
		}
		log.Debugf("migration applied: %s", f)
	}

	return nil
}

// SchemaFiles returns the names of the embedded schema files, in apply order.
func SchemaFiles() ([]string, error) {
	files, err := fs.Glob(migrations, "sql/*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(files)
	return files, nil
}
