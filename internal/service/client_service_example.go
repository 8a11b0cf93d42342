package service

import (
	"context"
	"fmt"

	"github.com/AI-Engineer-Skool/your-ai-lab/internal/store"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/utils"
	"github.com/AI-Engineer-Skool/your-ai-lab/models"
)

type clientExampleService struct {
	repository store.ExampleRepository
	hashKey    string
}

func NewClientExampleService(storages *store.ClientStorages, hashKey string) ClientExampleService {
	return &clientExampleService{
		repository: storages.ExampleRepository,
		hashKey:    hashKey,
	}
}

func (e *clientExampleService) Save(ctx context.Context, example models.Example) error {
	if example.Fingerprint == "" {
		example.Fingerprint = e.Fingerprint(example.Model, example.Prompt)
	}

	return e.repository.SaveExample(ctx, example)
}

func (e *clientExampleService) Get(ctx context.Context, exampleID string) (models.Example, error) {
	example, err := e.repository.GetExample(ctx, exampleID)
	if err != nil {
		return models.Example{}, fmt.Errorf("load example: %w", err)
	}
	return example, nil
}

func (e *clientExampleService) List(ctx context.Context, filter models.ExampleFilter) ([]models.Example, error) {
	examples, err := e.repository.ListExamples(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list examples: %w", err)
	}
	return examples, nil
}

func (e *clientExampleService) Delete(ctx context.Context, exampleID string) error {
	return e.repository.DeleteExample(ctx, exampleID)
}

func (e *clientExampleService) Purge(ctx context.Context) (int64, error) {
	return e.repository.PurgeDeleted(ctx)
}

// Fingerprint joins model and prompt with a newline so the pair cannot be
// confused with a different split of the same bytes.
func (e *clientExampleService) Fingerprint(model, prompt string) string {
	return utils.HashString(model+"\n"+prompt, e.hashKey)
}
