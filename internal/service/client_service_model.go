package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/AI-Engineer-Skool/your-ai-lab/internal/adapter"
	"github.com/AI-Engineer-Skool/your-ai-lab/models"
)

type clientModelService struct {
	adapter adapter.ModelServerAdapter

	mu     sync.RWMutex
	cached models.ModelList
	warm   bool
}

func NewClientModelService(serverAdapter adapter.ModelServerAdapter) ClientModelService {
	return &clientModelService{adapter: serverAdapter}
}

func (m *clientModelService) List(ctx context.Context) (models.ModelList, error) {
	m.mu.RLock()
	if m.warm {
		cached := m.cached
		m.mu.RUnlock()
		return cached, nil
	}
	m.mu.RUnlock()

	if err := m.Refresh(ctx); err != nil {
		return models.ModelList{}, err
	}

	return m.Cached(), nil
}

func (m *clientModelService) Refresh(ctx context.Context) error {
	list, err := m.adapter.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("refresh model catalog: %w", mapAdapterError(err))
	}

	m.mu.Lock()
	m.cached = list
	m.warm = true
	m.mu.Unlock()

	return nil
}

func (m *clientModelService) Cached() models.ModelList {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cached
}
