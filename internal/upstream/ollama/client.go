// Package ollama runs generation against a local Ollama server with schema constrained output.
package ollama

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/kdduha/sceramath/internal/config"
	"github.com/kdduha/sceramath/internal/upstream"
	"github.com/ollama/ollama/api"
)

type Client struct {
	client *api.Client
	model  string
}

func NewClient(httpClient *http.Client, cfg config.OllamaConfig) (*Client, error) {
	base, err := url.Parse(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid Ollama URL: %w", err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		client: api.NewClient(base, httpClient),
		model:  cfg.Model,
	}, nil
}

func (c *Client) Name() string { return config.ProviderOllama }

// Configured is always true: a local server needs no credentials.
func (c *Client) Configured() bool { return true }

func (c *Client) Generate(ctx context.Context, req upstream.Request) (string, error) {
	chatReq, err := buildChatRequest(c.model, req)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	err = c.client.Chat(ctx, chatReq, func(cr api.ChatResponse) error {
		b.WriteString(cr.Message.Content)
		return nil
	})
	if err != nil {
		var statusErr api.StatusError
		if errors.As(err, &statusErr) {
			return "", &upstream.StatusError{Code: statusErr.StatusCode, Body: statusErr.ErrorMessage}
		}
		return "", fmt.Errorf("ollama chat: %w", err)
	}
	return b.String(), nil
}

func buildChatRequest(model string, req upstream.Request) (*api.ChatRequest, error) {
	user := api.Message{Role: "user", Content: req.Prompt}
	if req.Image != nil {
		raw, err := req.Image.Bytes()
		if err != nil {
			return nil, err
		}
		user.Images = []api.ImageData{raw}
	}

	messages := make([]api.Message, 0, 2)
	if req.SystemInstruction != "" {
		messages = append(messages, api.Message{Role: "system", Content: req.SystemInstruction})
	}
	messages = append(messages, user)

	stream := false
	chatReq := &api.ChatRequest{
		Model:    model,
		Stream:   &stream,
		Messages: messages,
	}

	if req.Schema != nil {
		format, err := sonic.Marshal(req.Schema)
		if err != nil {
			return nil, fmt.Errorf("failed to encode schema: %w", err)
		}
		chatReq.Format = format
	}
	return chatReq, nil
}
