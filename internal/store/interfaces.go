package store

import (
	"context"

	"github.com/AI-Engineer-Skool/your-ai-lab/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// ExampleRepository is the low-level repository for the local example library.
type ExampleRepository interface {
	SaveExample(ctx context.Context, example models.Example) error
	GetExample(ctx context.Context, exampleID string) (models.Example, error)
	ListExamples(ctx context.Context, filter models.ExampleFilter) ([]models.Example, error)
	DeleteExample(ctx context.Context, exampleID string) error
	PurgeDeleted(ctx context.Context) (int64, error)
}

// CredentialRepository persists encrypted API tokens, one row per name.
type CredentialRepository interface {
	SaveCredential(ctx context.Context, credential models.Credential) error
	GetCredential(ctx context.Context, name string) (models.Credential, error)
	DeleteCredential(ctx context.Context, name string) error
}

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
