package logos

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/spinelhq/spinel/core"
)

// Request is the payload shared by both logo endpoints.
type Request struct {
	CompanyName string   `json:"company_name"`
	Style       string   `json:"style"`
	Colors      []string `json:"colors"`
}

// DescribeResponse is the body returned by the description endpoint.
type DescribeResponse struct {
	CompanyName     string   `json:"company_name"`
	LogoDescription string   `json:"logo_description"`
	PreviewURL      *string  `json:"preview_url"`
	DownloadFormats []string `json:"download_formats"`
}

// ImageResponse wraps an image generation outcome with the request echo.
type ImageResponse struct {
	CompanyName string      `json:"company_name"`
	Style       string      `json:"style"`
	Colors      []string    `json:"colors"`
	Result      ImageResult `json:"result"`
}

// Register attaches the logo endpoints to r.
func Register(r chi.Router, svc *Service) {
	r.Post("/generate-logo", handleDescribe(svc))
	r.Post("/generate-logo-image", handleImage(svc))
}

// Router returns a standalone router with the module's endpoints.
func Router(svc *Service) chi.Router {
	r := chi.NewRouter()
	Register(r, svc)
	return r
}

func (r *Request) params() Params {
	p := Params{CompanyName: r.CompanyName, Style: r.Style, Colors: r.Colors}
	if p.Style == "" {
		p.Style = "modern"
	}
	if len(p.Colors) == 0 {
		p.Colors = []string{"blue", "white"}
	}
	return p
}

func handleDescribe(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := core.DecodeJSON(r, &req); err != nil {
			core.RespondError(w, err)
			return
		}
		if req.CompanyName == "" {
			core.RespondError(w, core.ErrBadRequest.WithMessage("Company name is required"))
			return
		}

		description, err := svc.Describe(r.Context(), req.params())
		if err != nil {
			core.RespondError(w, err)
			return
		}

		p := req.params()
		core.RespondJSON(w, http.StatusOK, DescribeResponse{
			CompanyName:     p.CompanyName,
			LogoDescription: description,
			PreviewURL:      nil,
			DownloadFormats: downloadFormats,
		})
	}
}

func handleImage(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := core.DecodeJSON(r, &req); err != nil {
			core.RespondError(w, err)
			return
		}
		if req.CompanyName == "" {
			core.RespondError(w, core.ErrBadRequest.WithMessage("Company name is required"))
			return
		}

		p := req.params()
		result := svc.GenerateImage(r.Context(), p)

		core.RespondJSON(w, http.StatusOK, ImageResponse{
			CompanyName: p.CompanyName,
			Style:       p.Style,
			Colors:      p.Colors,
			Result:      result,
		})
	}
}
