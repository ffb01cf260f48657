package logos_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spinelhq/spinel/modules/logos"
)

func postJSON(t *testing.T, handler http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestGenerateLogoEndpoint(t *testing.T) {
	completer := &fakeCompleter{response: "a detailed description"}
	router := logos.Router(logos.NewService(completer))

	t.Run("returns description with format list", func(t *testing.T) {
		rec := postJSON(t, router, "/generate-logo", `{"company_name":"Spinel"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp logos.DescribeResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Spinel", resp.CompanyName)
		assert.Equal(t, "a detailed description", resp.LogoDescription)
		assert.Nil(t, resp.PreviewURL)
		assert.Equal(t, []string{"PNG", "SVG", "JPG", "AI"}, resp.DownloadFormats)
	})

	t.Run("defaults style and colors", func(t *testing.T) {
		rec := postJSON(t, router, "/generate-logo", `{"company_name":"Spinel"}`)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, completer.lastPrompt, "Style: modern")
		assert.Contains(t, completer.lastPrompt, "Colors: blue, white")
	})

	t.Run("missing company name is a client error", func(t *testing.T) {
		rec := postJSON(t, router, "/generate-logo", `{"style":"modern"}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Company name is required")
	})
}

func TestGenerateLogoImageEndpoint(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("img"))
	}))
	defer srv.Close()

	router := logos.Router(logos.NewService(nil, logos.WithImageEndpoint(srv.URL+"/prompt/")))

	t.Run("echoes request with defaults and nests the result", func(t *testing.T) {
		rec := postJSON(t, router, "/generate-logo-image", `{"company_name":"Spinel"}`)
		require.Equal(t, http.StatusOK, rec.Code)

		var resp logos.ImageResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "Spinel", resp.CompanyName)
		assert.Equal(t, "modern", resp.Style)
		assert.Equal(t, []string{"blue", "white"}, resp.Colors)
		assert.True(t, resp.Result.Success)
		assert.True(t, strings.HasPrefix(resp.Result.ImageBase64, "data:image/png;base64,"))
	})

	t.Run("missing company name is a client error", func(t *testing.T) {
		rec := postJSON(t, router, "/generate-logo-image", `{}`)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
