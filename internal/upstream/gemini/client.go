// Package gemini calls the generateContent REST endpoint of the Gemini API.
package gemini

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/kdduha/sceramath/internal/config"
	"github.com/kdduha/sceramath/internal/upstream"
)

const maxErrorBody = 64 << 10

type Client struct {
	httpClient     *http.Client
	baseURL        string
	apiKey         string
	model          string
	thinkingBudget int
}

func NewClient(httpClient *http.Client, cfg config.GeminiConfig) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:         cfg.APIKey,
		model:          cfg.Model,
		thinkingBudget: cfg.ThinkingBudget,
	}
}

func (c *Client) Name() string { return config.ProviderGemini }

func (c *Client) Configured() bool { return c.apiKey != "" }

func (c *Client) Generate(ctx context.Context, req upstream.Request) (string, error) {
	body, err := sonic.Marshal(c.buildRequest(req))
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return "", &upstream.StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}

	var out generateResponse
	if err := sonic.ConfigDefault.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	return out.text(), nil
}

func (c *Client) endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent?key=%s",
		c.baseURL, url.PathEscape(c.model), url.QueryEscape(c.apiKey))
}

func (c *Client) buildRequest(req upstream.Request) *generateRequest {
	parts := make([]part, 0, 2)
	if req.Image != nil {
		parts = append(parts, part{InlineData: &inlineData{
			MimeType: req.Image.MimeType,
			Data:     req.Image.Data,
		}})
	}
	parts = append(parts, part{Text: req.Prompt})

	out := &generateRequest{
		Contents: []content{{Parts: parts}},
		GenerationConfig: &generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   req.Schema,
		},
	}
	if req.SystemInstruction != "" {
		out.SystemInstruction = &content{Parts: []part{{Text: req.SystemInstruction}}}
	}
	if c.thinkingBudget > 0 {
		out.GenerationConfig.ThinkingConfig = &thinkingConfig{ThinkingBudget: c.thinkingBudget}
	}
	return out
}

// text joins the non-thought text parts of the first candidate.
func (r *generateResponse) text() string {
	if len(r.Candidates) == 0 {
		return ""
	}
	var b strings.Builder
	for _, p := range r.Candidates[0].Content.Parts {
		if p.Thought {
			continue
		}
		b.WriteString(p.Text)
	}
	return b.String()
}
