package generator

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientGenerateSuccess(t *testing.T) {
	var got generateRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "  Built scalable systems.  "})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "llama3", 5*time.Second)
	text, err := c.Generate(context.Background(), "some prompt")
	require.NoError(t, err)

	assert.Equal(t, "Built scalable systems.", text)
	assert.Equal(t, "llama3", got.Model)
	assert.Equal(t, "some prompt", got.Prompt)
	assert.False(t, got.Stream)
}

func TestClientGenerateNonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "model not found", http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "llama3", 5*time.Second)
	_, err := c.Generate(context.Background(), "p")

	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusNotFound, ue.Status)
	assert.Contains(t, ue.Detail, "model not found")
}

func TestClientGenerateEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"response": "   "})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "llama3", 5*time.Second)
	_, err := c.Generate(context.Background(), "p")

	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "empty response", ue.Detail)
}

func TestClientGenerateMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "llama3", 5*time.Second)
	_, err := c.Generate(context.Background(), "p")

	var ue *UpstreamError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, "malformed response body", ue.Detail)
}
