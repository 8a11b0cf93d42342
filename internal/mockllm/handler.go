// Package mockllm is a stand-in model server for development and tests. It
// speaks just enough of the completion API for the client to run against it
// without a real LocalAI deployment: a model catalog and a canned streaming
// completion.
package mockllm

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/AI-Engineer-Skool/your-ai-lab/internal/app"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/logger"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/utils"
	"github.com/AI-Engineer-Skool/your-ai-lab/internal/validators"
	"github.com/AI-Engineer-Skool/your-ai-lab/models"
)

// DefaultResponse is the canned completion text served for every prompt.
const DefaultResponse = "AI is the simulation of human intelligence by machines. " +
	"It learns patterns from data and uses them to make predictions."

type Handler struct {
	catalog  models.ModelList
	response string

	// tokenDelay paces streamed chunks so the client's progress output is
	// observable. Zero in tests.
	tokenDelay time.Duration

	validator validators.Validator
	logger    *logger.Logger
}

func NewHandler(catalog models.ModelList, log *logger.Logger) *Handler {
	return &Handler{
		catalog:    catalog,
		response:   DefaultResponse,
		tokenDelay: 20 * time.Millisecond,
		validator:  validators.NewCompletionRequestValidator(),
		logger:     log,
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withLogging)

	router.Route("/v1", func(r chi.Router) {
		r.Get("/models", h.listModels)
		r.Post("/completions", h.complete)
	})

	return router
}

func (h *Handler) listModels(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, h.catalog, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("write model catalog")
	}
}

func (h *Handler) complete(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.CompletionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
		return
	}

	// the model field stays optional here: the catalog check below covers it
	if err := h.validator.Validate(r.Context(), req,
		validators.FieldPrompt,
		validators.FieldTopP,
		validators.FieldTemperature,
		validators.FieldMaxTokens,
		validators.FieldStop,
	); err != nil {
		http.Error(w, fmt.Sprintf("%s: %v", app.MsgInvalidDataProvided, err), http.StatusBadRequest)
		return
	}

	if req.Model != "" && !h.catalog.Contains(req.Model) {
		http.Error(w, fmt.Sprintf("%s: %q", app.MsgModelNotFound, req.Model), http.StatusNotFound)
		return
	}

	log.Debug().
		Str("model", req.Model).
		Bool("stream", req.Stream).
		Int("prompt_len", len(req.Prompt)).
		Msg("serving canned completion")

	if req.Stream {
		h.streamCompletion(w, req)
		return
	}

	chunk := models.CompletionChunk{
		Object: "text_completion",
		Model:  req.Model,
		Choices: []models.CompletionChoice{
			{Text: h.response, FinishReason: "stop"},
		},
		Usage: &models.CompletionUsage{
			CompletionTokens: len(strings.Fields(h.response)),
		},
	}
	if _, err := utils.WriteJSON(w, chunk, http.StatusOK); err != nil {
		log.Err(err).Msg("write completion")
	}
}

// streamCompletion writes the canned response word by word as SSE chunks,
// finishing with the [DONE] marker.
func (h *Handler) streamCompletion(w http.ResponseWriter, req models.CompletionRequest) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	flusher, _ := w.(http.Flusher)

	words := strings.Fields(h.response)
	for i, word := range words {
		text := word
		if i < len(words)-1 {
			text += " "
		}

		chunk := models.CompletionChunk{
			Object: "text_completion",
			Model:  req.Model,
			Choices: []models.CompletionChoice{
				{Text: text},
			},
		}

		data, err := json.Marshal(chunk)
		if err != nil {
			return
		}

		fmt.Fprintf(w, "data: %s\n\n", data)
		if flusher != nil {
			flusher.Flush()
		}

		if h.tokenDelay > 0 {
			time.Sleep(h.tokenDelay)
		}
	}

	fmt.Fprint(w, "data: [DONE]\n\n")
	if flusher != nil {
		flusher.Flush()
	}
}
