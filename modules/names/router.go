package names

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/spinelhq/spinel/core"
)

// Response echoes the request's strategy and language next to the results.
type Response struct {
	Names    []string `json:"names"`
	Type     Strategy `json:"type"`
	Language Language `json:"language"`
}

// Register attaches the name-generation endpoint to r.
func Register(r chi.Router, gen *Generator) {
	r.Post("/generate-names", handleGenerate(gen))
}

// Router returns a standalone router with the module's endpoint.
func Router(gen *Generator) chi.Router {
	r := chi.NewRouter()
	Register(r, gen)
	return r
}

func handleGenerate(gen *Generator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := core.DecodeJSON(r, &req); err != nil {
			core.RespondError(w, err)
			return
		}

		generated, err := gen.Generate(r.Context(), req)
		if err != nil {
			switch {
			case errors.Is(err, ErrUnknownStrategy):
				core.RespondError(w, core.ErrBadRequest.WithMessage("Invalid generation type"))
			case errors.Is(err, ErrSectorRequired):
				core.RespondError(w, core.ErrBadRequest.WithMessage("Sector is required for sector-based generation"))
			default:
				core.RespondError(w, err)
			}
			return
		}

		core.RespondJSON(w, http.StatusOK, Response{
			Names:    generated,
			Type:     req.Type,
			Language: req.Language,
		})
	}
}
