package main

import (
	"fmt"

	"github.com/AI-Engineer-Skool/your-ai-lab/internal/config"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/logger"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/mockllm"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/server"
	"github.com/AI-Engineer-Skool/your-ai-lab/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("ai-lab-mockllm")
	cfg, err := config.GetMockServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	catalog := models.ModelList{Object: "list"}
	for _, name := range cfg.Models {
		catalog.Data = append(catalog.Data, models.ModelInfo{ID: name, Object: "model"})
	}

	handler := mockllm.NewHandler(catalog, log)

	srv, err := server.NewServer(handler.Init(), cfg.Address, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server error")
	}

	srv.RunServer()
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
