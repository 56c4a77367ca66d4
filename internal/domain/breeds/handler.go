package breeds

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/breeds", func(br chi.Router) {
		br.Get("/", listBreedsHandler(svc))
		br.Get("/{name}", getBreedHandler(svc))
	})
}

// breedResponse es la ficha de una raza devuelta por la API.
type breedResponse struct {
	Name string `json:"name"`
	Record
}

// listBreedsHandler godoc
// @Summary Listar razas del catálogo
// @Description Devuelve los nombres de raza del catálogo, ordenados. Si no hay catálogo persistido se usa el catálogo por defecto.
// @Tags breeds
// @Produce json
// @Success 200 {array} string
// @Failure 500 {string} string "internal error"
// @Router /breeds [get]
func listBreedsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := svc.List(r.Context())
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, names)
	}
}

// getBreedHandler godoc
// @Summary Ficha de una raza
// @Description Devuelve la ficha normalizada (todos los campos presentes). Con `format=markdown` devuelve la ficha en markdown.
// @Tags breeds
// @Produce json
// @Produce text/markdown
// @Param name path string true "Nombre de la raza"
// @Param format query string false "json (default) o markdown"
// @Success 200 {object} breedResponse
// @Failure 404 {string} string "breed not found"
// @Failure 500 {string} string "internal error"
// @Router /breeds/{name} [get]
func getBreedHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")
		if v, err := url.PathUnescape(name); err == nil {
			name = v
		}

		rec, err := svc.Get(r.Context(), name)
		if err != nil {
			switch {
			case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidInput):
				http.Error(w, "breed not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		if r.URL.Query().Get("format") == "markdown" {
			var buf bytes.Buffer
			if err := RenderMarkdown(&buf, rec); err != nil {
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}
			w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(buf.Bytes())
			return
		}

		writeJSON(w, http.StatusOK, breedResponse{Name: rec.Name, Record: rec})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
