package service

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/AI-Engineer-Skool/your-ai-lab/models"
	"github.com/stretchr/testify/assert"
)

// countingModelService counts Refresh calls without touching the network.
type countingModelService struct {
	refreshes atomic.Int64
}

func (c *countingModelService) List(context.Context) (models.ModelList, error) {
	return models.ModelList{}, nil
}

func (c *countingModelService) Refresh(context.Context) error {
	c.refreshes.Add(1)
	return nil
}

func (c *countingModelService) Cached() models.ModelList {
	return models.ModelList{}
}

func TestRefreshJob_TicksUntilStopped(t *testing.T) {
	modelSvc := &countingModelService{}
	job := NewClientRefreshJob(modelSvc)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(60 * time.Millisecond)
	job.Stop()

	refreshed := modelSvc.refreshes.Load()
	assert.GreaterOrEqual(t, refreshed, int64(2))

	// No more refreshes after Stop.
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, refreshed, modelSvc.refreshes.Load())
}

func TestRefreshJob_StopWithoutStart(t *testing.T) {
	job := NewClientRefreshJob(&countingModelService{})

	assert.NotPanics(t, func() { job.Stop() })
}

func TestRefreshJob_RestartReplacesPreviousJob(t *testing.T) {
	modelSvc := &countingModelService{}
	job := NewClientRefreshJob(modelSvc)

	job.Start(context.Background(), time.Hour)
	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	job.Stop()

	assert.GreaterOrEqual(t, modelSvc.refreshes.Load(), int64(1))
}

func TestRefreshJob_ContextCancelStopsTicker(t *testing.T) {
	modelSvc := &countingModelService{}
	job := NewClientRefreshJob(modelSvc)

	ctx, cancel := context.WithCancel(context.Background())
	job.Start(ctx, 10*time.Millisecond)
	cancel()
	time.Sleep(30 * time.Millisecond)

	before := modelSvc.refreshes.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, before, modelSvc.refreshes.Load())

	job.Stop()
}
