package identify

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-breed-identifier/internal/ports/vision"

	"github.com/google/uuid"
)

const (
	SafetyUnavailable = "Safety assessment information not available for this animal."
	FactsUnavailable  = "Animal facts not available."
)

var (
	ErrInvalidInput = errors.New("invalid input")
	// ErrCapability envuelve cualquier falla del modelo externo (red, timeout, cuota...).
	ErrCapability = errors.New("identification capability failed")
)

// Analysis es el resultado de analizar una imagen. No se persiste.
type Analysis struct {
	ID         string
	Answer     string
	Sections   Sections
	Safety     Region
	Facts      Region
	AnalyzedAt time.Time
}

// Region es una de las zonas de la respuesta: texto o placeholder.
type Region struct {
	Available bool
	Title     string
	Text      string
}

type Service struct {
	capability vision.Capability
	now        func() time.Time
	newID      func() string
}

func NewService(capability vision.Capability) *Service {
	return &Service{
		capability: capability,
		now:        time.Now,
		newID:      uuid.NewString,
	}
}

// Identify pide al modelo que identifique el animal de la imagen.
func (s *Service) Identify(ctx context.Context, img vision.Image) (string, error) {
	if len(img.Data) == 0 {
		return "", ErrInvalidInput
	}
	answer, err := s.capability.GenerateWithImage(ctx, img, identifyPrompt)
	if err != nil {
		return "", fmt.Errorf("%w: identify: %v", ErrCapability, err)
	}
	return answer, nil
}

// Describe pide datos curiosos sobre un tipo de animal.
func (s *Service) Describe(ctx context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", ErrInvalidInput
	}
	facts, err := s.capability.Generate(ctx, factsPrompt(topic))
	if err != nil {
		return "", fmt.Errorf("%w: describe: %v", ErrCapability, err)
	}
	return facts, nil
}

// Analyze corre el flujo completo de una subida: identificar, extraer secciones
// y, si hay tipo de animal, pedir datos curiosos. Las llamadas son secuenciales.
func (s *Service) Analyze(ctx context.Context, img vision.Image) (Analysis, error) {
	answer, err := s.Identify(ctx, img)
	if err != nil {
		return Analysis{}, err
	}

	sections := ExtractSections(answer)

	a := Analysis{
		ID:         s.newID(),
		Answer:     answer,
		Sections:   sections,
		Safety:     Region{Title: "Safety Assessment", Text: SafetyUnavailable},
		Facts:      Region{Title: "Animal Facts", Text: FactsUnavailable},
		AnalyzedAt: s.now(),
	}

	if sections.SafetyText != nil {
		a.Safety.Available = true
		a.Safety.Text = *sections.SafetyText
	}

	if sections.AnimalType != nil && *sections.AnimalType != "" {
		animal := *sections.AnimalType
		facts, err := s.Describe(ctx, animal)
		if err != nil {
			return Analysis{}, err
		}
		a.Facts = Region{
			Available: true,
			Title:     fmt.Sprintf("Interesting Facts About %ss", animal),
			Text:      facts,
		}
	}

	return a, nil
}
