package tui

import (
	"github.com/AI-Engineer-Skool/your-ai-lab/models"
)

type runTokenMsg struct {
	token models.StreamToken
}

type runDoneMsg struct {
	example models.Example
	err     error
}

type examplesLoadedMsg struct {
	examples []models.Example
	err      error
}

type exampleDeletedMsg struct {
	err error
}

type modelsLoadedMsg struct {
	list models.ModelList
	err  error
}

type copiedMsg struct{}

type clearStatusMsg struct{}
