// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/AI-Engineer-Skool/your-ai-lab/internal/mock"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/service"
	"github.com/AI-Engineer-Skool/your-ai-lab/models"
)

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

// collectMsgs executes a command tree, flattening batches into one slice.
func collectMsgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var msgs []tea.Msg
	for _, c := range batch {
		msgs = append(msgs, collectMsgs(c)...)
	}
	return msgs
}

func examplesLoadedFrom(t *testing.T, cmd tea.Cmd) examplesLoadedMsg {
	t.Helper()
	for _, msg := range collectMsgs(cmd) {
		if loaded, ok := msg.(examplesLoadedMsg); ok {
			return loaded
		}
	}
	t.Fatal("no example list was loaded")
	return examplesLoadedMsg{}
}

func TestModelCatalog_EnterSelectsModelForRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	completionSvc := mock.NewMockClientCompletionService(ctrl)
	services := &service.ClientServices{CompletionService: completionSvc}

	m := newMainLoopModel(context.Background(), services, "test")
	m.screen = screenModels

	catalog := models.ModelList{Data: []models.ModelInfo{
		{ID: "phi-3.5-mini-instruct"},
		{ID: "mistral-7b-instruct"},
	}}
	updated, _ := m.Update(modelsLoadedMsg{list: catalog})
	m = updated.(mainLoopModel)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(mainLoopModel)
	require.Equal(t, 1, m.modelsIdx)

	completionSvc.EXPECT().UseModel("mistral-7b-instruct")

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(mainLoopModel)

	assert.Equal(t, "Model selected: mistral-7b-instruct", m.status)
}

func TestModelCatalog_EnterOnEmptyCatalogIsNoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	completionSvc := mock.NewMockClientCompletionService(ctrl)
	services := &service.ClientServices{CompletionService: completionSvc}

	m := newMainLoopModel(context.Background(), services, "test")
	m.screen = screenModels

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(mainLoopModel)

	assert.Empty(t, m.status)
}

func TestExampleDetail_ReplayStartsNewRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	completionSvc := mock.NewMockClientCompletionService(ctrl)
	services := &service.ClientServices{CompletionService: completionSvc}

	saved := models.Example{
		ExampleID: "0191d2a0-0000-7000-8000-000000000001",
		Title:     "AI Explanation",
		Prompt:    "Explain what AI is in two sentences.",
	}

	m := newMainLoopModel(context.Background(), services, "test")
	m.screen = screenDetail
	m.examples = []models.Example{saved}

	started := make(chan struct{})
	completionSvc.EXPECT().
		Complete(gomock.Any(), saved.Title, []string{saved.Prompt}, gomock.Any()).
		DoAndReturn(func(context.Context, string, []string, func(models.StreamToken)) (models.Example, error) {
			defer close(started)
			return saved, nil
		})

	updated, cmd := m.Update(keyRune('p'))
	m = updated.(mainLoopModel)

	require.NotNil(t, cmd)
	assert.Equal(t, screenRun, m.screen)
	assert.True(t, m.running)
	assert.Equal(t, saved.Title, m.runTitle)
	assert.Empty(t, m.runResponse)

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("completion was not started")
	}
}

func TestExampleLibrary_SearchFiltersByTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	exampleSvc := mock.NewMockClientExampleService(ctrl)
	services := &service.ClientServices{ExampleService: exampleSvc}

	m := newMainLoopModel(context.Background(), services, "test")
	m.screen = screenList

	updated, _ := m.Update(keyRune('/'))
	m = updated.(mainLoopModel)
	require.True(t, m.searching)

	for _, r := range "cat" {
		updated, _ = m.Update(keyRune(r))
		m = updated.(mainLoopModel)
	}

	matched := []models.Example{{ExampleID: "a", Title: "cat facts"}}
	exampleSvc.EXPECT().
		List(gomock.Any(), models.ExampleFilter{TitleLike: "cat"}).
		Return(matched, nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(mainLoopModel)
	assert.False(t, m.searching)
	assert.Equal(t, "cat", m.listFilter)

	updated, _ = m.Update(examplesLoadedFrom(t, cmd))
	m = updated.(mainLoopModel)
	assert.Equal(t, matched, m.examples)
}

func TestExampleLibrary_EscClearsSearchFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	exampleSvc := mock.NewMockClientExampleService(ctrl)
	services := &service.ClientServices{ExampleService: exampleSvc}

	m := newMainLoopModel(context.Background(), services, "test")
	m.screen = screenList
	m.searching = true
	m.listFilter = "cat"
	m.searchInput.SetValue("cat")

	exampleSvc.EXPECT().
		List(gomock.Any(), models.ExampleFilter{}).
		Return(nil, nil)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = updated.(mainLoopModel)

	assert.False(t, m.searching)
	assert.Empty(t, m.listFilter)
	assert.Empty(t, m.searchInput.Value())

	loaded := examplesLoadedFrom(t, cmd)
	assert.NoError(t, loaded.err)
}
