package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pet-breed-identifier/internal/ports/vision"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GenerateWithImage_SendsDataURL(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "/chat/completions"))
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "vision-test", body["model"])

		raw, _ := json.Marshal(body["messages"])
		assert.Contains(t, string(raw), "data:image/png;base64,")
		assert.Contains(t, string(raw), "identify please")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 0,
			"model": "vision-test",
			"choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "**Animal:** Cat"}}]
		}`))
	}))
	defer ts.Close()

	c := NewClient(Config{BaseURL: ts.URL + "/", APIKey: "sk-test", Model: "vision-test"})

	out, err := c.GenerateWithImage(context.Background(),
		vision.Image{Data: []byte("\x89PNG\r\n\x1a\n"), MIMEType: "image/png"}, "identify please")
	require.NoError(t, err)
	assert.Equal(t, "**Animal:** Cat", out)
}

func TestClient_NotConfigured(t *testing.T) {
	c := NewClient(Config{})
	_, err := c.Generate(context.Background(), "facts")
	assert.ErrorIs(t, err, ErrOpenAINotConfigured)
}
