package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/AI-Engineer-Skool/your-ai-lab/internal/logger"
	"github.com/AI-Engineer-Skool/your-ai-lab/models"
)

type exampleRepository struct {
	*DB
	logger *logger.Logger
}

func NewExampleRepository(db *DB, logger *logger.Logger) ExampleRepository {
	return &exampleRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *exampleRepository) SaveExample(ctx context.Context, example models.Example) error {
	log := logger.FromContext(ctx)

	err := r.DB.withRetry(ctx, func() error {
		_, execErr := r.DB.ExecContext(ctx, saveExample,
			example.ExampleID,
			example.Title,
			example.Model,
			example.Prompt,
			example.Response,
			example.Fingerprint,
			example.TokenCount,
			example.Elapsed.Milliseconds(),
			example.CreatedAt,
			example.Deleted,
		)
		return execErr
	})
	if err != nil {
		if isDuplicate(err) {
			return fmt.Errorf("%w (fingerprint=%s)", ErrDuplicateExample, example.Fingerprint)
		}
		log.Err(err).
			Str("func", "exampleRepository.SaveExample").
			Str("example_id", example.ExampleID).
			Msg("failed to execute insert for example")
		return fmt.Errorf("failed to save example (example_id=%s): %w", example.ExampleID, err)
	}

	return nil
}

func (r *exampleRepository) GetExample(ctx context.Context, exampleID string) (models.Example, error) {
	log := logger.FromContext(ctx)

	var (
		example   models.Example
		elapsedMS int64
	)

	row := r.DB.QueryRowContext(ctx, getExample, exampleID)
	scanErr := row.Scan(
		&example.ExampleID,
		&example.Title,
		&example.Model,
		&example.Prompt,
		&example.Response,
		&example.Fingerprint,
		&example.TokenCount,
		&elapsedMS,
		&example.CreatedAt,
		&example.Deleted,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Example{}, fmt.Errorf("%w (example_id=%s)", ErrExampleNotFound, exampleID)
		}
		log.Err(scanErr).
			Str("func", "exampleRepository.GetExample").
			Str("example_id", exampleID).
			Msg("failed to scan example row")
		return models.Example{}, fmt.Errorf("failed to scan example row: %w", scanErr)
	}

	example.Elapsed = time.Duration(elapsedMS) * time.Millisecond

	return example, nil
}

func (r *exampleRepository) ListExamples(ctx context.Context, filter models.ExampleFilter) ([]models.Example, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListExamplesQuery(filter)
	if err != nil {
		log.Err(err).
			Str("func", "exampleRepository.ListExamples").
			Msg("failed to build list query")
		return nil, fmt.Errorf("failed to build list query: %w", err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "exampleRepository.ListExamples").
			Msg("failed to execute query for listing examples")
		return nil, fmt.Errorf("failed to query examples: %w", err)
	}
	defer rows.Close()

	var examples []models.Example

	for rows.Next() {
		var (
			example   models.Example
			elapsedMS int64
		)

		scanErr := rows.Scan(
			&example.ExampleID,
			&example.Title,
			&example.Model,
			&example.Prompt,
			&example.Response,
			&example.Fingerprint,
			&example.TokenCount,
			&elapsedMS,
			&example.CreatedAt,
			&example.Deleted,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "exampleRepository.ListExamples").
				Msg("failed to scan example row")
			return nil, fmt.Errorf("failed to scan example row: %w", scanErr)
		}

		example.Elapsed = time.Duration(elapsedMS) * time.Millisecond
		examples = append(examples, example)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "exampleRepository.ListExamples").
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("error iterating example rows: %w", rowsErr)
	}

	return examples, nil
}

func (r *exampleRepository) DeleteExample(ctx context.Context, exampleID string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, softDeleteExample, exampleID)
	if err != nil {
		log.Err(err).
			Str("func", "exampleRepository.DeleteExample").
			Str("example_id", exampleID).
			Msg("failed to execute soft delete for example")
		return fmt.Errorf("failed to delete example (example_id=%s): %w", exampleID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).
			Str("func", "exampleRepository.DeleteExample").
			Str("example_id", exampleID).
			Msg("failed to get rows affected after soft delete")
		return fmt.Errorf("failed to get rows affected (example_id=%s): %w", exampleID, err)
	}

	if rowsAffected == 0 {
		log.Warn().
			Str("func", "exampleRepository.DeleteExample").
			Str("example_id", exampleID).
			Msg("no rows affected during soft delete: record not found")
		return fmt.Errorf("%w (example_id=%s)", ErrExampleNotFound, exampleID)
	}

	return nil
}

func (r *exampleRepository) PurgeDeleted(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, purgeDeletedExamples)
	if err != nil {
		log.Err(err).
			Str("func", "exampleRepository.PurgeDeleted").
			Msg("failed to purge soft-deleted examples")
		return 0, fmt.Errorf("failed to purge deleted examples: %w", err)
	}

	purged, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to get rows affected after purge: %w", err)
	}

	return purged, nil
}
