package testinternals

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	"github.com/2beens/fitplanner/internal/db"
)

const (
	PostgresUser     = "postgres"
	PostgresPassword = "postgres"
	PostgresDBName   = "fitplanner"
)

// Postgres is a throwaway postgres container with the schema applied.
type Postgres struct {
	Pool *pgxpool.Pool
	Port string

	dockerPool *dockertest.Pool
	resource   *dockertest.Resource
}

func NewPostgres(ctx context.Context) (_ *Postgres, err error) {
	// uses a sensible default on windows (tcp/http) and linux/osx (socket)
	dockerPool, err := dockertest.NewPool("")
	if err != nil {
		return nil, fmt.Errorf("could not create new dockertest pool: %w", err)
	}

	// uses pool to try to connect to Docker
	if err = dockerPool.Client.Ping(); err != nil {
		return nil, fmt.Errorf("could not ping dockertest pool: %w", err)
	}

	resource, err := dockerPool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16",
		Env: []string{
			"POSTGRES_USER=" + PostgresUser,
			"POSTGRES_PASSWORD=" + PostgresPassword,
			"POSTGRES_DB=" + PostgresDBName,
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{
			Name: "no",
		}
	})
	if err != nil {
		return nil, fmt.Errorf("dockerpool run postgres: %w", err)
	}

	pg := &Postgres{
		Port:       resource.GetPort("5432/tcp"),
		dockerPool: dockerPool,
		resource:   resource,
	}
	defer func() {
		if err != nil {
			pg.Close()
		}
	}()

	dsn := fmt.Sprintf(
		"postgres://%s:%s@localhost:%s/%s?sslmode=disable",
		PostgresUser, PostgresPassword, pg.Port, PostgresDBName,
	)
	if err = dockerPool.Retry(func() error {
		sqlDB, err := sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		return sqlDB.Ping()
	}); err != nil {
		return nil, fmt.Errorf("connect to db: %w", err)
	}

	pg.Pool, err = db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     "localhost",
		DBPort:     pg.Port,
		DBUser:     PostgresUser,
		DBPassword: PostgresPassword,
		DBName:     PostgresDBName,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err = db.Migrate(ctx, pg.Pool); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return pg, nil
}

func (p *Postgres) Truncate(ctx context.Context, tables ...string) error {
	for _, table := range tables {
		if _, err := p.Pool.Exec(ctx, "TRUNCATE TABLE "+table+" RESTART IDENTITY"); err != nil {
			return fmt.Errorf("truncate %s: %w", table, err)
		}
	}
	return nil
}

func (p *Postgres) Close() {
	if p.Pool != nil {
		p.Pool.Close()
	}
	if p.resource != nil {
		if err := p.dockerPool.Purge(p.resource); err != nil {
			log.Printf("postgres teardown: %s", err)
		}
	}
}
