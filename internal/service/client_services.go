package service

import (
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/adapter"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/config"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/crypto"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/store"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/utils"
)

type ClientServices struct {
	ModelService      ClientModelService
	CompletionService ClientCompletionService
	ExampleService    ClientExampleService
	CredentialService ClientCredentialService
	RefreshJob        ClientRefreshJob
}

func NewClientServices(appCfg config.ClientApp, storages *store.ClientStorages, serverAdapter adapter.ModelServerAdapter, keychain crypto.KeyChainService) *ClientServices {
	utils.InitHasherPool(appCfg.HashKey)

	modelSvc := NewClientModelService(serverAdapter)
	exampleSvc := NewClientExampleService(storages, appCfg.HashKey)
	completionSvc := NewClientCompletionService(appCfg, serverAdapter, exampleSvc)
	credentialSvc := NewClientCredentialService(storages, keychain, appCfg.HashKey)

	return &ClientServices{
		ModelService:      modelSvc,
		CompletionService: completionSvc,
		ExampleService:    exampleSvc,
		CredentialService: credentialSvc,
		RefreshJob:        NewClientRefreshJob(modelSvc),
	}
}
