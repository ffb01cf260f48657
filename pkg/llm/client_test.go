package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spinelhq/spinel/pkg/llm"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *llm.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return llm.NewClient(llm.Config{
		APIKey:  "test-key",
		BaseURL: srv.URL,
		Model:   "gpt-4o-mini",
		Timeout: time.Second,
	})
}

func TestComplete(t *testing.T) {
	t.Run("returns first choice text", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "gpt-4o-mini", req["model"])

			json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]string{"role": "assistant", "content": "  Alpha\nBeta  "}},
				},
			})
		})

		text, err := client.Complete(context.Background(), "system", "prompt")
		require.NoError(t, err)
		assert.Equal(t, "Alpha\nBeta", text)
	})

	t.Run("non-2xx status", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "nope", http.StatusTooManyRequests)
		})

		_, err := client.Complete(context.Background(), "system", "prompt")
		assert.ErrorIs(t, err, llm.ErrUnexpectedStatus)
	})

	t.Run("malformed body", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("{not json"))
		})

		_, err := client.Complete(context.Background(), "system", "prompt")
		assert.ErrorIs(t, err, llm.ErrMalformedResponse)
	})

	t.Run("empty choices", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		})

		_, err := client.Complete(context.Background(), "system", "prompt")
		assert.ErrorIs(t, err, llm.ErrMalformedResponse)
	})

	t.Run("timeout", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(150 * time.Millisecond)
		})

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
		defer cancel()

		_, err := client.Complete(ctx, "system", "prompt")
		assert.ErrorIs(t, err, llm.ErrTimeout)
	})

	t.Run("network failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		url := srv.URL
		srv.Close()

		client := llm.NewClient(llm.Config{APIKey: "k", BaseURL: url, Model: "m", Timeout: time.Second})
		_, err := client.Complete(context.Background(), "system", "prompt")
		assert.ErrorIs(t, err, llm.ErrNetwork)
	})
}
