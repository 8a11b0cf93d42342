package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/AI-Engineer-Skool/your-ai-lab/internal/config"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/logger"
)

// ClientStorages groups the client-side repositories into a single value that
// can be passed around the service layer.
type ClientStorages struct {
	// ExampleRepository is the repository for the local example library.
	ExampleRepository ExampleRepository

	// CredentialRepository holds API tokens encrypted at rest.
	CredentialRepository CredentialRepository
}

// NewClientStorages initialises the client storage layer using the supplied
// configuration and logger. It performs the following steps:
//  1. Opens a database connection: PostgreSQL when cfg.DB.DSN carries a
//     postgres scheme, otherwise a local SQLite file (created if missing).
//  2. Runs pending schema migrations via [DB.Migrate].
//  3. Constructs and returns a [ClientStorages] value wired to fresh
//     repositories.
//
// Returns an error if the database connection cannot be established or if
// migration fails.
func NewClientStorages(cfg config.ClientStorage, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := connect(context.Background(), cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		ExampleRepository:    NewExampleRepository(db, logger),
		CredentialRepository: NewCredentialRepository(db, logger),
	}, nil
}

func connect(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	if isPostgresDSN(cfg.DSN) {
		return NewConnectPostgres(ctx, cfg, log)
	}
	return NewConnectSQLite(ctx, cfg, log)
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
