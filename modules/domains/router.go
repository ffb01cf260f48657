package domains

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/spinelhq/spinel/core"
)

// Request carries the free-text candidate name.
type Request struct {
	Name string `json:"name"`
}

// Response pairs the normalized label with the per-suffix estimates.
type Response struct {
	DomainName string   `json:"domain_name"`
	Results    []Result `json:"results"`
}

// Register attaches the domain-check endpoint to r.
func Register(r chi.Router, checker *Checker) {
	r.Post("/check-domain", handleCheck(checker))
}

// Router returns a standalone router with the module's endpoint.
func Router(checker *Checker) chi.Router {
	r := chi.NewRouter()
	Register(r, checker)
	return r
}

func handleCheck(checker *Checker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req Request
		if err := core.DecodeJSON(r, &req); err != nil {
			core.RespondError(w, err)
			return
		}
		if req.Name == "" {
			core.RespondError(w, core.ErrBadRequest.WithMessage("Name is required"))
			return
		}

		label, results := checker.Check(r.Context(), req.Name)
		core.RespondJSON(w, http.StatusOK, Response{
			DomainName: label,
			Results:    results,
		})
	}
}
