package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// UpstreamError reports a failed generation call: either a non-2xx status
// from the service or a 2xx reply that carried no usable text. Handlers map
// it to 502.
type UpstreamError struct {
	Status int
	Detail string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("generation service: status %d: %s", e.Status, e.Detail)
}

// Client calls an Ollama-compatible generation endpoint: one POST with
// {model, prompt, stream:false}, one JSON reply with the text in "response".
// The call is synchronous and non-streaming; the configured timeout is the
// only bound, there are no retries.
type Client struct {
	url   string
	model string
	http  *http.Client
}

func NewClient(url, model string, timeout time.Duration) *Client {
	return &Client{
		url:   url,
		model: model,
		http:  &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}

// Generate sends the prompt and returns the trimmed generated text.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{Model: c.model, Prompt: prompt, Stream: false})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &UpstreamError{Status: resp.StatusCode, Detail: strings.TrimSpace(string(detail))}
	}

	var out generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &UpstreamError{Status: resp.StatusCode, Detail: "malformed response body"}
	}
	text := strings.TrimSpace(out.Response)
	if text == "" {
		return "", &UpstreamError{Status: resp.StatusCode, Detail: "empty response"}
	}
	return text, nil
}
