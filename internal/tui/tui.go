package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/AI-Engineer-Skool/your-ai-lab/internal/logger"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/service"
)

var ErrUserQuit = errors.New("user quit")

type TUI struct {
	services *service.ClientServices
	version  string
}

func New(services *service.ClientServices, version string, _ *logger.Logger) (*TUI, error) {
	return &TUI{services: services, version: version}, nil
}

// MainLoop runs the interactive session until the user quits.
func (t *TUI) MainLoop(ctx context.Context) error {
	model := newMainLoopModel(ctx, t.services, t.version)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return runErr
	}

	if _, ok := finalModel.(mainLoopModel); !ok {
		return tea.ErrProgramKilled
	}
	return nil
}
