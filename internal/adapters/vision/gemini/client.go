package gemini

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"pet-breed-identifier/internal/platform/httpclient"
	"pet-breed-identifier/internal/ports/vision"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-1.5-flash"
	apiKeyHeader   = "x-goog-api-key"
)

var (
	ErrGeminiNotConfigured = errors.New("gemini client not configured")
	ErrGeminiUpstream      = errors.New("gemini upstream error")
)

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

// Client habla con la API REST generateContent de Gemini.
type Client struct {
	http   *httpclient.Client
	apiKey string
	model  string
}

func NewClient(cfg Config) (*Client, error) {
	base := strings.TrimSpace(cfg.BaseURL)
	if base == "" {
		base = DefaultBaseURL
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	hc, err := httpclient.New(httpclient.Options{BaseURL: base, Timeout: cfg.Timeout})
	if err != nil {
		return nil, err
	}

	return &Client{
		http:   hc,
		apiKey: strings.TrimSpace(cfg.APIKey),
		model:  model,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.apiKey != ""
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inline_data,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mime_type"`
	Data     string `json:"data"` // base64
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	Contents []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content      content `json:"content"`
		FinishReason string  `json:"finishReason"`
	} `json:"candidates"`
	PromptFeedback *struct {
		BlockReason string `json:"blockReason"`
	} `json:"promptFeedback,omitempty"`
}

// GenerateWithImage manda imagen + instrucción en un mismo turno.
func (c *Client) GenerateWithImage(ctx context.Context, img vision.Image, prompt string) (string, error) {
	if len(img.Data) == 0 {
		return "", vision.ErrInvalidImage
	}
	mime := img.MIMEType
	if mime == "" {
		mime = http.DetectContentType(img.Data)
	}

	return c.generate(ctx, []part{
		{InlineData: &inlineData{MimeType: mime, Data: base64.StdEncoding.EncodeToString(img.Data)}},
		{Text: prompt},
	})
}

// Generate manda solo texto.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	return c.generate(ctx, []part{{Text: prompt}})
}

func (c *Client) generate(ctx context.Context, parts []part) (string, error) {
	if !c.IsConfigured() {
		return "", ErrGeminiNotConfigured
	}

	path := fmt.Sprintf("/v1beta/models/%s:generateContent", c.model)
	req := generateRequest{Contents: []content{{Role: "user", Parts: parts}}}

	var resp generateResponse
	err := c.http.DoJSON(ctx, http.MethodPost, path,
		map[string]string{apiKeyHeader: c.apiKey}, req, &resp)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeminiUpstream, err)
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return "", fmt.Errorf("%w: blocked: %s", ErrGeminiUpstream, resp.PromptFeedback.BlockReason)
	}
	if len(resp.Candidates) == 0 {
		return "", vision.ErrEmptyResponse
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	if sb.Len() == 0 {
		return "", vision.ErrEmptyResponse
	}
	return sb.String(), nil
}
