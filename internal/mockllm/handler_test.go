package mockllm

import (
	"bufio"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AI-Engineer-Skool/your-ai-lab/internal/logger"
	"github.com/AI-Engineer-Skool/your-ai-lab/models"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	catalog := models.ModelList{
		Object: "list",
		Data:   []models.ModelInfo{{ID: "phi-3.5-mini-instruct", Object: "model"}},
	}

	h := NewHandler(catalog, logger.Nop())
	h.tokenDelay = 0

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)
	return srv
}

func postCompletion(t *testing.T, srv *httptest.Server, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(srv.URL+"/v1/completions", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func TestListModels(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/v1/models")
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list models.ModelList
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Equal(t, []string{"phi-3.5-mini-instruct"}, list.Names())
}

func TestComplete_NonStreaming(t *testing.T) {
	srv := newTestServer(t)

	resp := postCompletion(t, srv, `{"model":"phi-3.5-mini-instruct","prompt":"hi","stream":false}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var chunk models.CompletionChunk
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&chunk))
	assert.Equal(t, DefaultResponse, chunk.Text())
	assert.Equal(t, "stop", chunk.Choices[0].FinishReason)
	require.NotNil(t, chunk.Usage)
	assert.Positive(t, chunk.Usage.CompletionTokens)
}

func TestComplete_Streaming(t *testing.T) {
	srv := newTestServer(t)

	resp := postCompletion(t, srv, `{"model":"phi-3.5-mini-instruct","prompt":"hi","stream":true}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	var (
		rebuilt strings.Builder
		done    bool
	)

	scanner := bufio.NewScanner(resp.Body)
	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, "data:") {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, "data:"))
		if data == "[DONE]" {
			done = true
			break
		}

		var chunk models.CompletionChunk
		require.NoError(t, json.Unmarshal([]byte(data), &chunk))
		rebuilt.WriteString(chunk.Text())
	}
	require.NoError(t, scanner.Err())

	assert.True(t, done, "stream must finish with the [DONE] marker")
	assert.Equal(t, DefaultResponse, rebuilt.String())
}

func TestComplete_UnknownModel(t *testing.T) {
	srv := newTestServer(t)

	resp := postCompletion(t, srv, `{"model":"no-such-model","prompt":"hi"}`)

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestComplete_InvalidBody(t *testing.T) {
	srv := newTestServer(t)

	resp := postCompletion(t, srv, `{not json`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestComplete_EmptyPrompt(t *testing.T) {
	srv := newTestServer(t)

	resp := postCompletion(t, srv, `{"model":"phi-3.5-mini-instruct","prompt":"  "}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestComplete_InvalidSampling(t *testing.T) {
	srv := newTestServer(t)

	resp := postCompletion(t, srv, `{"model":"phi-3.5-mini-instruct","prompt":"hi","top_p":1.7}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
