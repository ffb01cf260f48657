package saved

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/spinelhq/spinel/core"
)

// CreateRequest is the payload for saving a name.
type CreateRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Register attaches the saved-name endpoints to r.
func Register(r chi.Router, repo Repository) {
	r.Post("/save-name", handleCreate(repo))
	r.Get("/saved-names", handleList(repo))
	r.Delete("/saved-names/{id}", handleDelete(repo))
	r.Put("/saved-names/{id}/favorite", handleToggleFavorite(repo))
}

// Router returns a standalone router with the module's endpoints.
func Router(repo Repository) chi.Router {
	r := chi.NewRouter()
	Register(r, repo)
	return r
}

func handleCreate(repo Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateRequest
		if err := core.DecodeJSON(r, &req); err != nil {
			core.RespondError(w, err)
			return
		}
		if req.Name == "" {
			core.RespondError(w, core.ErrBadRequest.WithMessage("Name is required"))
			return
		}

		record, err := repo.Create(r.Context(), req.Name, req.Category)
		if err != nil {
			core.RespondError(w, err)
			return
		}
		core.RespondJSON(w, http.StatusOK, record)
	}
}

func handleList(repo Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := repo.List(r.Context())
		if err != nil {
			core.RespondError(w, err)
			return
		}
		core.RespondJSON(w, http.StatusOK, names)
	}
}

func handleDelete(repo Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		if err := repo.Delete(r.Context(), id); err != nil {
			if errors.Is(err, ErrNotFound) {
				core.RespondError(w, core.ErrNotFound.WithMessage("Name not found"))
				return
			}
			core.RespondError(w, err)
			return
		}
		core.RespondJSON(w, http.StatusOK, map[string]string{
			"message": "Name deleted successfully",
		})
	}
}

func handleToggleFavorite(repo Repository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		isFavorite, err := repo.ToggleFavorite(r.Context(), id)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				core.RespondError(w, core.ErrNotFound.WithMessage("Name not found"))
				return
			}
			core.RespondError(w, err)
			return
		}
		core.RespondJSON(w, http.StatusOK, map[string]any{
			"message":     "Favorite status updated",
			"is_favorite": isFavorite,
		})
	}
}
