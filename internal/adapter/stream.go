package adapter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/AI-Engineer-Skool/your-ai-lab/internal/utils"
	"github.com/AI-Engineer-Skool/your-ai-lab/models"
)

const (
	sseDataPrefix = "data:"
	sseDoneMarker = "[DONE]"

	// SSE lines are usually short, but a completion chunk carrying a long
	// token burst can exceed bufio's default 64K line limit.
	sseScanBufInitial = 64 * 1024
	sseScanBufMax     = 1024 * 1024
)

// CompleteStream implements [ModelServerAdapter]. It POSTs a streaming
// completion request to /completions and parses the SSE body line by line.
// Tokens are delivered on the returned token channel together with the time
// elapsed since the stream started; the channel closes when the server sends
// the [DONE] marker or the body ends. A single error, if any, is delivered on
// the error channel before it closes.
//
// Malformed "data:" payloads are skipped rather than treated as fatal: the
// backend occasionally interleaves keep-alive noise with real chunks.
func (h *httpModelServerAdapter) CompleteStream(ctx context.Context, req models.CompletionRequest) (<-chan models.StreamToken, <-chan error) {
	tokens := make(chan models.StreamToken, 64)
	errs := make(chan error, 1)

	req.Stream = true

	go func() {
		defer close(tokens)
		defer close(errs)

		start := time.Now()

		resp, err := h.request(ctx).
			SetHeader("Content-Type", "application/json").
			SetHeader("Accept", "text/event-stream").
			SetBody(req).
			SetDoNotParseResponse(true).
			Post("/completions")
		if err != nil {
			errs <- fmt.Errorf("stream completion request: %w", err)
			return
		}

		raw := resp.RawBody()
		defer raw.Close()

		if code := resp.StatusCode(); code < 200 || code >= 300 {
			body, _ := io.ReadAll(io.LimitReader(raw, 64*1024))
			errs <- mapStatusError(code, string(body))
			return
		}

		if err := h.scanStream(ctx, raw, start, tokens); err != nil {
			errs <- err
		}

		evt := h.logger.Debug().
			Dur("elapsed", time.Since(start)).
			Str("model", req.Model)
		if runID, ok := utils.GetRunIDFromContext(ctx); ok {
			evt = evt.Str("run_id", runID)
		}
		evt.Msg("completion stream finished")
	}()

	return tokens, errs
}

// scanStream reads SSE lines from body and forwards decoded tokens until the
// stream ends, the [DONE] marker arrives, or ctx is cancelled.
func (h *httpModelServerAdapter) scanStream(ctx context.Context, body io.Reader, start time.Time, tokens chan<- models.StreamToken) error {
	scanner := bufio.NewScanner(body)
	scanner.Buffer(make([]byte, 0, sseScanBufInitial), sseScanBufMax)

	for scanner.Scan() {
		line := scanner.Text()
		if !strings.HasPrefix(line, sseDataPrefix) {
			continue
		}
		data := strings.TrimSpace(strings.TrimPrefix(line, sseDataPrefix))
		if data == "" {
			continue
		}
		if data == sseDoneMarker {
			return nil
		}

		var chunk models.CompletionChunk
		if err := json.Unmarshal([]byte(data), &chunk); err != nil {
			continue
		}

		text := chunk.Text()
		if text == "" {
			continue
		}

		select {
		case tokens <- models.StreamToken{Content: text, Elapsed: time.Since(start)}:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("read completion stream: %w", err)
	}
	return nil
}
