// SPDX-License-Identifier: Apache-2.0

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/AI-Engineer-Skool/your-ai-lab/internal/adapter"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/config"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/logger"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/service"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/tui"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/workers"
	"github.com/AI-Engineer-Skool/your-ai-lab/models"
)

// App ties the client runtime together. Depending on the parsed prompt flags
// it either performs a single streamed completion on stdout or drops into the
// interactive terminal UI with background workers running.
type App struct {
	cfg           *config.ClientConfig
	services      *service.ClientServices
	serverAdapter adapter.ModelServerAdapter
	workers       *workers.Workers
	ui            *tui.TUI
	logger        *logger.Logger
}

func NewApp(cfg *config.ClientConfig, services *service.ClientServices, serverAdapter adapter.ModelServerAdapter, ui *tui.TUI, log *logger.Logger) (*App, error) {
	if cfg == nil {
		return nil, errors.New("client app: config is nil")
	}
	if services == nil {
		return nil, errors.New("client app: services are nil")
	}

	return &App{
		cfg:           cfg,
		services:      services,
		serverAdapter: serverAdapter,
		workers:       workers.NewWorkers(cfg.Workers, services),
		ui:            ui,
		logger:        log,
	}, nil
}

func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())

	if err := a.prepareToken(ctx); err != nil {
		return err
	}

	if a.cfg.Prompt.OneShot() {
		return a.runOneShot(ctx)
	}

	a.workers.Run(ctx)
	defer a.workers.Stop()

	if err := a.ui.MainLoop(ctx); err != nil && !errors.Is(err, tui.ErrUserQuit) {
		return fmt.Errorf("main loop: %w", err)
	}

	return nil
}

// prepareToken handles the stored-credential flags before anything talks to
// the server. -save-token seals the -token value into the library;
// -use-saved-token unseals it and hands it to the adapter.
func (a *App) prepareToken(ctx context.Context) error {
	if a.cfg.Prompt.SaveToken {
		if err := a.services.CredentialService.SaveToken(ctx, a.cfg.App.APIToken); err != nil {
			return fmt.Errorf("save api token: %w", err)
		}
		a.logger.Info().Msg("api token sealed and stored")
	}

	if a.cfg.Prompt.UseSavedToken {
		token, err := a.services.CredentialService.LoadToken(ctx)
		if err != nil {
			return fmt.Errorf("load saved api token: %w", err)
		}
		a.serverAdapter.SetToken(token)
	}

	return nil
}

// runOneShot reproduces the scripted flow: list the available models, stream
// the completion to stdout token by token, then report the total time and the
// aggregated response. A failing model listing is a warning, not a stopper.
func (a *App) runOneShot(ctx context.Context) error {
	fmt.Println("\nAvailable Models:")
	list, err := a.services.ModelService.List(ctx)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
	} else {
		for _, name := range list.Names() {
			fmt.Printf("  - %s\n", name)
		}
	}

	fmt.Printf("\nExample: %s\n", a.cfg.Prompt.Title)
	fmt.Println("Response:")

	example, err := a.services.CompletionService.Complete(ctx,
		a.cfg.Prompt.Title,
		a.cfg.Prompt.Content,
		func(tok models.StreamToken) {
			fmt.Print(tok.Content)
		},
	)
	if err != nil {
		return fmt.Errorf("run completion: %w", err)
	}

	fmt.Printf("\nTotal time: %.2fs\n", example.Elapsed.Seconds())
	fmt.Printf("\nTotal response: %s\n", example.Response)
	return nil
}
