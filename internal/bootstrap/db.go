package bootstrap

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/engineers-planet/site/config"
	"github.com/engineers-planet/site/internal/storage/postgres"
)

// OpenDB connects to Postgres and makes sure the record tables exist.
func OpenDB(ctx context.Context, cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := postgres.NewConnection(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	if err := postgres.Migrate(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("db migrate: %w", err)
	}
	return db, nil
}
