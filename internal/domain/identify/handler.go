package identify

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"pet-breed-identifier/internal/platform/logger"
	"pet-breed-identifier/internal/ports/vision"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const (
	DefaultMaxUploadBytes = 10 << 20
	uploadField           = "image"

	genericFailure = "An error occurred while analyzing the image. Please try again with a different image."
)

// allowedTypes son los formatos aceptados (jpg, jpeg, png).
var allowedTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/png":  {},
}

type HandlerOptions struct {
	Logger         logger.Logger
	MaxUploadBytes int64
}

func RegisterRoutes(r chi.Router, svc *Service, opts HandlerOptions) {
	if opts.MaxUploadBytes <= 0 {
		opts.MaxUploadBytes = DefaultMaxUploadBytes
	}
	r.Post("/identify", identifyHandler(svc, opts))
}

// regionResponse es una zona de la respuesta (seguridad o datos curiosos).
type regionResponse struct {
	Available bool   `json:"available"`
	Title     string `json:"title"`
	Text      string `json:"text"`
}

// analysisResponse es el resultado de identificar una imagen.
type analysisResponse struct {
	ID               string         `json:"id"`
	BreedInformation string         `json:"breed_information"`
	Sections         Sections       `json:"sections"`
	SafetyAssessment regionResponse `json:"safety_assessment"`
	AnimalFacts      regionResponse `json:"animal_facts"`
	AnalyzedAt       time.Time      `json:"analyzed_at"`
}

// identifyHandler godoc
// @Summary Identificar la raza de un animal
// @Description Recibe una imagen (jpg/jpeg/png) en el campo multipart `image`, la envía al modelo multimodal y devuelve la respuesta completa más las zonas de seguridad y datos curiosos. Si falta una sección, la zona trae un placeholder con `available=false`.
// @Tags identify
// @Accept multipart/form-data
// @Produce json
// @Param Authorization header string false "Bearer token (solo si API_TOKEN está configurado)"
// @Param image formData file true "Imagen del animal"
// @Success 200 {object} analysisResponse
// @Failure 400 {string} string "invalid upload / unsupported image type"
// @Failure 401 {string} string "unauthorized"
// @Failure 413 {string} string "image too large"
// @Failure 502 {string} string "error genérico del modelo externo"
// @Router /identify [post]
func identifyHandler(svc *Service, opts HandlerOptions) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := opts.Logger
		if log != nil {
			log = log.With(map[string]any{"request_id": chimw.GetReqID(r.Context())})
		}

		img, status, msg := readUpload(w, r, opts.MaxUploadBytes)
		if status != 0 {
			http.Error(w, msg, status)
			return
		}

		a, err := svc.Analyze(r.Context(), img)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, "invalid upload", http.StatusBadRequest)
				return
			}
			// Único catch-all: no se clasifica la causa ni se reintenta.
			if log != nil {
				log.Error("identify failed", map[string]any{"error": err.Error()})
			}
			http.Error(w, genericFailure, http.StatusBadGateway)
			return
		}

		if log != nil {
			log.Info("identify ok", map[string]any{
				"analysis_id":      a.ID,
				"safety_available": a.Safety.Available,
				"facts_available":  a.Facts.Available,
			})
		}

		writeJSON(w, http.StatusOK, toAnalysisResponse(a))
	}
}

// readUpload devuelve la imagen o un status != 0 con el mensaje de error.
func readUpload(w http.ResponseWriter, r *http.Request, max int64) (vision.Image, int, string) {
	r.Body = http.MaxBytesReader(w, r.Body, max+(1<<20))

	if err := r.ParseMultipartForm(max); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return vision.Image{}, http.StatusRequestEntityTooLarge, "image too large"
		}
		return vision.Image{}, http.StatusBadRequest, "invalid upload"
	}

	f, _, err := r.FormFile(uploadField)
	if err != nil {
		return vision.Image{}, http.StatusBadRequest, "missing image field"
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, max+1))
	if err != nil {
		return vision.Image{}, http.StatusBadRequest, "invalid upload"
	}
	if int64(len(data)) > max {
		return vision.Image{}, http.StatusRequestEntityTooLarge, "image too large"
	}
	if len(data) == 0 {
		return vision.Image{}, http.StatusBadRequest, "empty image"
	}

	ct := http.DetectContentType(data)
	if _, ok := allowedTypes[ct]; !ok {
		return vision.Image{}, http.StatusBadRequest, "unsupported image type"
	}

	return vision.Image{Data: data, MIMEType: ct}, 0, ""
}

func toAnalysisResponse(a Analysis) analysisResponse {
	return analysisResponse{
		ID:               a.ID,
		BreedInformation: a.Answer,
		Sections:         a.Sections,
		SafetyAssessment: regionResponse{
			Available: a.Safety.Available,
			Title:     a.Safety.Title,
			Text:      a.Safety.Text,
		},
		AnimalFacts: regionResponse{
			Available: a.Facts.Available,
			Title:     a.Facts.Title,
			Text:      a.Facts.Text,
		},
		AnalyzedAt: a.AnalyzedAt,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
