package logos_test

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spinelhq/spinel/modules/logos"
)

type fakeCompleter struct {
	response string
	err      error

	lastSystem string
	lastPrompt string
}

func (f *fakeCompleter) Complete(_ context.Context, system, prompt string) (string, error) {
	f.lastSystem = system
	f.lastPrompt = prompt
	return f.response, f.err
}

func TestDescribe(t *testing.T) {
	completer := &fakeCompleter{response: `{"concept":"a gem"}`}
	svc := logos.NewService(completer)

	got, err := svc.Describe(context.Background(), logos.Params{
		CompanyName: "Spinel",
		Style:       "modern",
		Colors:      []string{"blue", "white"},
	})
	require.NoError(t, err)

	// The provider's text is passed through untouched.
	assert.Equal(t, `{"concept":"a gem"}`, got)
	assert.Contains(t, completer.lastSystem, "logo design assistant")
	assert.Contains(t, completer.lastPrompt, "company: Spinel")
	assert.Contains(t, completer.lastPrompt, "Style: modern")
	assert.Contains(t, completer.lastPrompt, "Colors: blue, white")
	assert.Contains(t, completer.lastPrompt, "keys: concept, typography, colors, layout, formats")
}

func TestGenerateImage(t *testing.T) {
	params := logos.Params{
		CompanyName: "Spinel",
		Style:       "modern",
		Colors:      []string{"blue", "white"},
	}

	t.Run("success inlines the image as a data URI", func(t *testing.T) {
		payload := []byte{0x89, 'P', 'N', 'G'}
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "512", r.URL.Query().Get("width"))
			assert.Equal(t, "flux", r.URL.Query().Get("model"))
			w.Write(payload)
		}))
		defer srv.Close()

		svc := logos.NewService(nil, logos.WithImageEndpoint(srv.URL+"/prompt/"))
		result := svc.GenerateImage(context.Background(), params)

		require.True(t, result.Success)
		assert.Empty(t, result.Error)
		assert.Contains(t, result.Prompt, "logo design for 'Spinel'")
		assert.Contains(t, result.ImageURL, srv.URL)
		assert.Equal(t,
			"data:image/png;base64,"+base64.StdEncoding.EncodeToString(payload),
			result.ImageBase64)
	})

	t.Run("arabic name switches prompt wording", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("img"))
		}))
		defer srv.Close()

		svc := logos.NewService(nil, logos.WithImageEndpoint(srv.URL+"/prompt/"))
		result := svc.GenerateImage(context.Background(), logos.Params{
			CompanyName: "تقنية",
			Style:       "modern",
			Colors:      []string{"blue"},
		})

		require.True(t, result.Success)
		assert.Contains(t, result.Prompt, "company name 'تقنية'")
		assert.NotContains(t, result.Prompt, "logo design for")
	})

	t.Run("non-200 degrades with styled fallback", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		svc := logos.NewService(nil, logos.WithImageEndpoint(srv.URL+"/prompt/"))
		result := svc.GenerateImage(context.Background(), params)

		require.False(t, result.Success)
		assert.Equal(t, "Image generation failed with status 502", result.Error)
		assert.Equal(t, logos.ReasonStatus, result.Reason)
		assert.Equal(t, "لوغو احترافي لشركة Spinel بأسلوب modern مع ألوان blue, white",
			result.FallbackDescription)
		assert.Empty(t, result.ImageBase64)
		assert.Empty(t, result.ImageURL)
	})

	t.Run("transport failure degrades with plain fallback", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close() // refuse connections

		svc := logos.NewService(nil, logos.WithImageEndpoint(srv.URL+"/prompt/"))
		result := svc.GenerateImage(context.Background(), params)

		require.False(t, result.Success)
		assert.NotEmpty(t, result.Error)
		assert.Equal(t, logos.ReasonNetwork, result.Reason)
		assert.Equal(t, "لوغو احترافي لشركة Spinel", result.FallbackDescription)
		assert.Empty(t, result.ImageBase64)
	})

	t.Run("timeout is classified as such", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
		}))
		defer srv.Close()

		svc := logos.NewService(nil,
			logos.WithImageEndpoint(srv.URL+"/prompt/"),
			logos.WithHTTPClient(&http.Client{Timeout: 20 * time.Millisecond}),
		)
		result := svc.GenerateImage(context.Background(), params)

		require.False(t, result.Success)
		assert.Equal(t, logos.ReasonTimeout, result.Reason)
		assert.Equal(t, "لوغو احترافي لشركة Spinel", result.FallbackDescription)
	})

	t.Run("prompt is path escaped", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Write([]byte("img"))
		}))
		defer srv.Close()

		svc := logos.NewService(nil, logos.WithImageEndpoint(srv.URL+"/prompt/"))
		result := svc.GenerateImage(context.Background(), params)

		require.True(t, result.Success)
		assert.True(t, strings.HasPrefix(gotPath, "/prompt/"))
		assert.NotContains(t, result.ImageURL, " ")
	})
}
