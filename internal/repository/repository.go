package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/emsys-dev/employee-manager/backend/internal/config"
)

type Repository struct {
	cfg    *config.Config
	dbpool *sql.DB
}

func NewRepository(cfg *config.Config, dbpool *sql.DB) *Repository {
	return &Repository{
		cfg:    cfg,
		dbpool: dbpool,
	}
}

func (r *Repository) queryContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), time.Duration(r.cfg.Database.QueryTimeout)*time.Second)
}

// Migrate creates the two tables if they do not exist yet. There is no
// versioned migration tooling, table creation is idempotent.
func (r *Repository) Migrate() error {
	queries := []string{
		`
		CREATE TABLE IF NOT EXISTS accounts (
			id bigserial PRIMARY KEY,
			username text UNIQUE NOT NULL,
			password_hash text NOT NULL,
			role text NOT NULL DEFAULT 'admin'
		)
		`,
		`
		CREATE TABLE IF NOT EXISTS employees (
			id bigserial PRIMARY KEY,
			name text NOT NULL,
			email text UNIQUE NOT NULL,
			position text NOT NULL,
			department text NOT NULL,
			salary double precision NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		)
		`,
	}

	for _, query := range queries {
		ctx, cancel := r.queryContext()
		_, err := r.dbpool.ExecContext(ctx, query)
		cancel()
		if err != nil {
			return err
		}
	}

	return nil
}
