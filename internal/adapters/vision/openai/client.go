package openai

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-breed-identifier/internal/ports/vision"

	oa "github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const DefaultModel = "gpt-4o-mini"

var (
	ErrOpenAINotConfigured = errors.New("openai client not configured")
	ErrOpenAIUpstream      = errors.New("openai upstream error")
)

type Config struct {
	BaseURL string // opcional: cualquier endpoint compatible con OpenAI
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client usa chat completions con una parte de imagen (data URL).
type Client struct {
	client oa.Client
	model  string
	ok     bool
}

func NewClient(cfg Config) *Client {
	opts := []option.RequestOption{
		option.WithAPIKey(strings.TrimSpace(cfg.APIKey)),
	}
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		opts = append(opts, option.WithBaseURL(base))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	return &Client{
		client: oa.NewClient(opts...),
		model:  model,
		ok:     strings.TrimSpace(cfg.APIKey) != "",
	}
}

func (c *Client) GenerateWithImage(ctx context.Context, img vision.Image, prompt string) (string, error) {
	if len(img.Data) == 0 {
		return "", vision.ErrInvalidImage
	}
	mime := img.MIMEType
	if mime == "" {
		mime = http.DetectContentType(img.Data)
	}
	dataURL := "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(img.Data)

	parts := []oa.ChatCompletionContentPartUnionParam{
		oa.TextContentPart(prompt),
		oa.ImageContentPart(oa.ChatCompletionContentPartImageImageURLParam{URL: dataURL}),
	}
	return c.complete(ctx, oa.UserMessage(parts))
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	return c.complete(ctx, oa.UserMessage(prompt))
}

func (c *Client) complete(ctx context.Context, msg oa.ChatCompletionMessageParamUnion) (string, error) {
	if c == nil || !c.ok {
		return "", ErrOpenAINotConfigured
	}

	completion, err := c.client.Chat.Completions.New(ctx, oa.ChatCompletionNewParams{
		Model:    shared.ChatModel(c.model),
		Messages: []oa.ChatCompletionMessageParamUnion{msg},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrOpenAIUpstream, err)
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		return "", vision.ErrEmptyResponse
	}
	return completion.Choices[0].Message.Content, nil
}
