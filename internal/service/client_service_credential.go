package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/AI-Engineer-Skool/your-ai-lab/internal/crypto"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/store"
	"github.com/AI-Engineer-Skool/your-ai-lab/models"
)

type clientCredentialService struct {
	repository store.CredentialRepository
	keychain   crypto.KeyChainService

	// passphrase seals the token at rest. It comes from the configured hash
	// key, so the same config that wrote a token can read it back.
	passphrase string
}

func NewClientCredentialService(storages *store.ClientStorages, keychain crypto.KeyChainService, passphrase string) ClientCredentialService {
	return &clientCredentialService{
		repository: storages.CredentialRepository,
		keychain:   keychain,
		passphrase: passphrase,
	}
}

func (c *clientCredentialService) SaveToken(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}

	salt, err := c.keychain.GenerateSalt()
	if err != nil {
		return fmt.Errorf("generate credential salt: %w", err)
	}

	key := c.keychain.DeriveKey(c.passphrase, salt)
	blob, err := c.keychain.Seal([]byte(token), key)
	if err != nil {
		return fmt.Errorf("seal api token: %w", err)
	}

	credential := models.Credential{
		Name:       models.DefaultCredentialName,
		Salt:       salt,
		Ciphertext: blob,
		CreatedAt:  time.Now().UTC(),
	}

	if err := c.repository.SaveCredential(ctx, credential); err != nil {
		return fmt.Errorf("persist sealed token: %w", err)
	}

	return nil
}

func (c *clientCredentialService) LoadToken(ctx context.Context) (string, error) {
	credential, err := c.repository.GetCredential(ctx, models.DefaultCredentialName)
	if err != nil {
		return "", err
	}

	key := c.keychain.DeriveKey(c.passphrase, credential.Salt)
	token, err := c.keychain.Open(credential.Ciphertext, key)
	if err != nil {
		return "", fmt.Errorf("unseal api token: %w", err)
	}

	return string(token), nil
}

func (c *clientCredentialService) DeleteToken(ctx context.Context) error {
	return c.repository.DeleteCredential(ctx, models.DefaultCredentialName)
}
