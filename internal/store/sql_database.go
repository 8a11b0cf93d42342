package store

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/AI-Engineer-Skool/your-ai-lab/internal/logger"
	"github.com/AI-Engineer-Skool/your-ai-lab/migrations"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

const maxRetryAttempts = 3

type DB struct {
	*sql.DB
	driver             string
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// withRetry runs op, retrying up to maxRetryAttempts times when the error
// classifier reports the failure as transient. Backoff grows linearly.
func (db *DB) withRetry(ctx context.Context, op func() error) error {
	var err error

	for attempt := 1; attempt <= maxRetryAttempts; attempt++ {
		err = op()
		if err == nil {
			return nil
		}
		if db.classify(err) != Retryable {
			return err
		}

		db.logger.Warn().
			Err(err).
			Int("attempt", attempt).
			Msg("retryable database error")

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Duration(attempt) * 100 * time.Millisecond):
		}
	}

	return err
}

func (db *DB) classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}

// isDuplicate reports whether err is a unique-constraint violation, for
// either of the supported drivers.
func isDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UniqueViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
