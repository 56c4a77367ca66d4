package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"pet-breed-identifier/internal/adapters/storage"
	"pet-breed-identifier/internal/adapters/vision/gemini"
	"pet-breed-identifier/internal/adapters/vision/ollama"
	"pet-breed-identifier/internal/adapters/vision/openai"
	"pet-breed-identifier/internal/config"
	"pet-breed-identifier/internal/domain/breeds"
	"pet-breed-identifier/internal/platform/logger"
	"pet-breed-identifier/internal/ports/vision"
	"pet-breed-identifier/internal/router"
)

// @title Pet Breed Identifier API
// @version 1.0
// @description Identificación de raza a partir de una foto y catálogo de fichas de raza.
// @BasePath /
func main() {
	log := logger.NewFromEnv()

	if err := run(log); err != nil {
		log.Error("fatal", map[string]any{"error": err.Error()})
		os.Exit(1)
	}
}

func run(log logger.Logger) error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	capability, err := newCapability(cfg)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repo, closer, backend, err := storage.OpenCatalog(ctx, storage.Options{
		DBDSN:         cfg.DBDSN,
		SQLitePath:    cfg.SQLitePath,
		BreedInfoPath: cfg.BreedInfoPath,
	})
	if err != nil {
		return fmt.Errorf("open catalog: %w", err)
	}
	defer closer.Close()

	// Un catálogo corrupto no se tapa con el default: se corta el arranque.
	svc := breeds.NewService(repo)
	if cfg.CatalogBootstrap {
		c, generated, err := svc.Bootstrap(ctx)
		if err != nil {
			return err
		}
		log.Info("catalog ready", map[string]any{"backend": string(backend), "breeds": len(c), "generated": generated})
	} else {
		c, err := svc.Load(ctx)
		if err != nil {
			return err
		}
		log.Info("catalog ready", map[string]any{"backend": string(backend), "breeds": len(c)})
	}

	r := router.NewRouter(router.Options{
		Capability:     capability,
		Catalog:        repo,
		Logger:         log,
		APIToken:       cfg.APIToken,
		MaxUploadBytes: cfg.MaxUploadBytes,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		// dos llamadas al modelo por request
		WriteTimeout: 2*cfg.Timeout + 10*time.Second,
	}

	log.Info("starting server", map[string]any{
		"addr":     cfg.Addr(),
		"provider": string(cfg.Provider),
		"model":    cfg.Model,
	})
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

func newCapability(cfg config.Config) (vision.Capability, error) {
	switch cfg.Provider {
	case config.ProviderGemini:
		return gemini.NewClient(gemini.Config{
			BaseURL: cfg.GeminiBaseURL,
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		})
	case config.ProviderOpenAI:
		return openai.NewClient(openai.Config{
			BaseURL: cfg.OpenAIBaseURL,
			APIKey:  cfg.OpenAIAPIKey,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		}), nil
	case config.ProviderOllama:
		return ollama.NewClient(ollama.Config{
			Host:    cfg.OllamaHost,
			Model:   cfg.Model,
			Timeout: cfg.Timeout,
		})
	default:
		return nil, fmt.Errorf("%w: %q", config.ErrUnknownProvider, cfg.Provider)
	}
}
