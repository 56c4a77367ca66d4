package ollama

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pet-breed-identifier/internal/ports/vision"

	"github.com/ollama/ollama/api"
	"github.com/ollama/ollama/envconfig"
)

const DefaultModel = "llava"

var ErrOllamaUpstream = errors.New("ollama upstream error")

type Config struct {
	// Host vacío => OLLAMA_HOST / default de ollama.
	Host    string
	Model   string
	Timeout time.Duration
}

// Client usa un modelo multimodal local (llava, bakllava, ...).
type Client struct {
	client *api.Client
	model  string
}

func NewClient(cfg Config) (*Client, error) {
	hostURL := envconfig.Host()
	if h := strings.TrimSpace(cfg.Host); h != "" {
		u, err := url.Parse(h)
		if err != nil {
			return nil, fmt.Errorf("invalid ollama host: %w", err)
		}
		hostURL = u
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		client: api.NewClient(hostURL, &http.Client{Timeout: cfg.Timeout}),
		model:  model,
	}, nil
}

func (c *Client) GenerateWithImage(ctx context.Context, img vision.Image, prompt string) (string, error) {
	if len(img.Data) == 0 {
		return "", vision.ErrInvalidImage
	}
	return c.generate(ctx, &api.GenerateRequest{
		Model:  c.model,
		Prompt: prompt,
		Images: []api.ImageData{img.Data},
	})
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, &api.GenerateRequest{
		Model:  c.model,
		Prompt: prompt,
	})
}

func (c *Client) generate(ctx context.Context, req *api.GenerateRequest) (string, error) {
	var sb strings.Builder

	err := c.client.Generate(ctx, req, func(resp api.GenerateResponse) error {
		_, err := sb.WriteString(resp.Response)
		return err
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOllamaUpstream, err)
	}
	if sb.Len() == 0 {
		return "", vision.ErrEmptyResponse
	}
	return sb.String(), nil
}
