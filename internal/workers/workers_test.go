package workers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/AI-Engineer-Skool/your-ai-lab/internal/mock"
)

type fakeWorker struct {
	runs  int
	stops int
}

func (f *fakeWorker) Run(context.Context) { f.runs++ }
func (f *fakeWorker) Stop()               { f.stops++ }

func TestWorkers_RunAndStopAll(t *testing.T) {
	first := &fakeWorker{}
	second := &fakeWorker{}
	w := &Workers{workers: []Worker{first, second}}

	w.Run(context.Background())
	w.Stop()

	assert.Equal(t, 1, first.runs)
	assert.Equal(t, 1, second.runs)
	assert.Equal(t, 1, first.stops)
	assert.Equal(t, 1, second.stops)
}

func TestRefreshWorker_DelegatesToJob(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	ctx := context.Background()
	mockJob := mock.NewMockClientRefreshJob(ctrl)
	worker := newRefreshWorker(mockJob, 30*time.Second)

	mockJob.EXPECT().Start(ctx, 30*time.Second)
	mockJob.EXPECT().Stop()

	worker.Run(ctx)
	worker.Stop()
}
