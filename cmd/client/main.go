package main

import (
	"fmt"

	"github.com/AI-Engineer-Skool/your-ai-lab/internal/adapter"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/client"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/config"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/crypto"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/logger"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/service"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/store"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("ai-lab-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	serverAdapter, err := adapter.NewHTTPModelServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create model server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(cfg.App, localStorage, serverAdapter, crypto.NewKeyChainService())

	ui, err := tui.New(services, cfg.App.Version, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(cfg, services, serverAdapter, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
