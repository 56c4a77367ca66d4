package vision

import (
	"context"
	"errors"
)

var (
	// ErrEmptyResponse indica que el modelo respondió sin texto.
	ErrEmptyResponse = errors.New("vision: empty model response")
	ErrInvalidImage  = errors.New("vision: invalid image")
)

// Image es la imagen subida, tal cual llegó.
type Image struct {
	Data     []byte
	MIMEType string // image/jpeg, image/png
}

// Capability es el modelo multimodal externo. Cualquier texto es una respuesta
// válida; no se garantiza que respete la plantilla pedida.
type Capability interface {
	GenerateWithImage(ctx context.Context, img Image, prompt string) (string, error)
	Generate(ctx context.Context, prompt string) (string, error)
}
