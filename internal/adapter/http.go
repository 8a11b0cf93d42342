package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/AI-Engineer-Skool/your-ai-lab/internal/config"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/logger"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/utils"
	"github.com/AI-Engineer-Skool/your-ai-lab/models"
	"github.com/go-resty/resty/v2"
)

type httpModelServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPModelServerAdapter constructs an HTTP/REST implementation of
// [ModelServerAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout. When appCfg carries an API token it
// is attached to every request.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as
// a valid URL.
func NewHTTPModelServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ModelServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpModelServerAdapter{client: client, token: strings.TrimSpace(appCfg.APIToken), logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ModelServerAdapter]. It stores token
// (whitespace-trimmed) for use in the Authorization header of all subsequent
// requests.
func (h *httpModelServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ModelServerAdapter]. It returns the bearer token
// currently held by the adapter, or an empty string if none has been set.
func (h *httpModelServerAdapter) Token() string {
	return h.token
}

// ListModels implements [ModelServerAdapter]. It GETs /models and decodes
// the catalog. Returns an error if the request fails or the server responds
// with a non-2xx status.
func (h *httpModelServerAdapter) ListModels(ctx context.Context) (models.ModelList, error) {
	var list models.ModelList

	resp, err := h.request(ctx).
		SetResult(&list).
		Get("/models")
	if err != nil {
		return models.ModelList{}, fmt.Errorf("list models request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ModelList{}, err
	}

	return list, nil
}

// Complete implements [ModelServerAdapter]. It POSTs a non-streaming request
// to /completions and decodes the single response chunk.
func (h *httpModelServerAdapter) Complete(ctx context.Context, req models.CompletionRequest) (models.CompletionChunk, error) {
	req.Stream = false

	var chunk models.CompletionChunk
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		SetResult(&chunk).
		Post("/completions")
	if err != nil {
		return models.CompletionChunk{}, fmt.Errorf("completion request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.CompletionChunk{}, err
	}

	return chunk, nil
}

func (h *httpModelServerAdapter) request(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}
