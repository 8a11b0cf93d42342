package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/AI-Engineer-Skool/your-ai-lab/internal/logger"
	"github.com/AI-Engineer-Skool/your-ai-lab/models"
)

type credentialRepository struct {
	*DB
	logger *logger.Logger
}

func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	return &credentialRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *credentialRepository) SaveCredential(ctx context.Context, credential models.Credential) error {
	log := logger.FromContext(ctx)

	err := r.DB.withRetry(ctx, func() error {
		_, execErr := r.DB.ExecContext(ctx, saveCredential,
			credential.Name,
			credential.Salt,
			credential.Ciphertext,
			credential.CreatedAt,
		)
		return execErr
	})
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.SaveCredential").
			Str("name", credential.Name).
			Msg("failed to execute upsert for credential")
		return fmt.Errorf("failed to save credential (name=%s): %w", credential.Name, err)
	}

	return nil
}

func (r *credentialRepository) GetCredential(ctx context.Context, name string) (models.Credential, error) {
	log := logger.FromContext(ctx)

	var credential models.Credential

	row := r.DB.QueryRowContext(ctx, getCredential, name)
	scanErr := row.Scan(
		&credential.Name,
		&credential.Salt,
		&credential.Ciphertext,
		&credential.CreatedAt,
	)
	if scanErr != nil {
		if errors.Is(scanErr, sql.ErrNoRows) {
			return models.Credential{}, fmt.Errorf("%w (name=%s)", ErrCredentialNotFound, name)
		}
		log.Err(scanErr).
			Str("func", "credentialRepository.GetCredential").
			Str("name", name).
			Msg("failed to scan credential row")
		return models.Credential{}, fmt.Errorf("failed to scan credential row: %w", scanErr)
	}

	return credential, nil
}

func (r *credentialRepository) DeleteCredential(ctx context.Context, name string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteCredential, name)
	if err != nil {
		log.Err(err).
			Str("func", "credentialRepository.DeleteCredential").
			Str("name", name).
			Msg("failed to execute delete for credential")
		return fmt.Errorf("failed to delete credential (name=%s): %w", name, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected (name=%s): %w", name, err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("%w (name=%s)", ErrCredentialNotFound, name)
	}

	return nil
}
