package router

import (
	"net/http"

	_ "pet-breed-identifier/docs" // registra el swagger servido en /swagger
	mem "pet-breed-identifier/internal/adapters/storage/memory"
	"pet-breed-identifier/internal/domain/breeds"
	"pet-breed-identifier/internal/domain/identify"
	"pet-breed-identifier/internal/middleware"
	"pet-breed-identifier/internal/platform/logger"
	"pet-breed-identifier/internal/ports/vision"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Capability es obligatoria: sin modelo no hay identificación.
	Capability vision.Capability

	// Opcional: si no viene, catálogo in-memory (cae al catálogo por defecto).
	Catalog breeds.Repository

	Logger         logger.Logger // nil => Nop
	APIToken       string        // vacío => /identify sin auth (modo dev)
	MaxUploadBytes int64         // <= 0 => identify.DefaultMaxUploadBytes
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.RequestLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	catalogRepo := opts.Catalog
	if catalogRepo == nil {
		catalogRepo = mem.NewBreedsRepo(nil)
	}

	// Services por módulo
	breedsSvc := breeds.NewService(catalogRepo)
	identifySvc := identify.NewService(opts.Capability)

	// Rutas por módulo
	breeds.RegisterRoutes(r, breedsSvc)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireToken(opts.APIToken))
		identify.RegisterRoutes(r, identifySvc, identify.HandlerOptions{
			Logger:         log.With(map[string]any{"module": "identify"}),
			MaxUploadBytes: opts.MaxUploadBytes,
		})
	})

	return r
}
