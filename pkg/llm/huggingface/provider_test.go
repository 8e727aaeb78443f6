package huggingface

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"legal-advisor-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatSendsLowercaseMessageKeys(t *testing.T) {
	var rawBody []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		require.Equal(t, "Bearer hf-key", r.Header.Get("Authorization"))
		var err error
		rawBody, err = io.ReadAll(r.Body)
		require.NoError(t, err)
		w.Write([]byte(`{"choices":[{"message":{"content":"File an FIR at the nearest station."}}]}`))
	}))
	defer srv.Close()

	p := NewProvider("hf-key", srv.URL, "qwen2.5")
	out, err := p.Chat(context.Background(),
		[]llm.Message{{Role: "user", Content: "Legal steps for: theft"}},
		llm.WithMaxTokens(200))

	require.NoError(t, err)
	assert.Equal(t, "File an FIR at the nearest station.", out)

	// The router is OpenAI-compatible and only accepts lowercase keys.
	assert.Contains(t, string(rawBody), `"role":"user"`)
	assert.Contains(t, string(rawBody), `"content":"Legal steps for: theft"`)
	assert.NotContains(t, string(rawBody), `"Role"`)
	assert.NotContains(t, string(rawBody), `"Content"`)

	var got chatRequest
	require.NoError(t, json.Unmarshal(rawBody, &got))
	assert.Equal(t, "qwen2.5", got.Model)
	assert.Equal(t, 200, got.MaxTokens)
}

func TestChatSurfacesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"error":{"message":"model is overloaded"}}`))
	}))
	defer srv.Close()

	p := NewProvider("hf-key", srv.URL, "qwen2.5")
	_, err := p.Chat(context.Background(), []llm.Message{{Role: "user", Content: "hi"}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "model is overloaded")
}
