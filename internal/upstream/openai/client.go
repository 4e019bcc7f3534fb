// Package openai sends structured generation calls to an OpenAI-compatible chat completions API.
package openai

import (
	"context"
	"errors"
	"fmt"

	"github.com/kdduha/sceramath/internal/config"
	"github.com/kdduha/sceramath/internal/upstream"
	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

const schemaName = "math_solution"

type Client struct {
	openaiClient openai.Client
	apiKey       string
	modelName    string
}

func NewClient(cfg config.OpenAIConfig, opts ...option.RequestOption) *Client {
	opts = append([]option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithBaseURL(cfg.BaseURL),
	}, opts...)

	return &Client{
		openaiClient: openai.NewClient(opts...),
		apiKey:       cfg.APIKey,
		modelName:    cfg.Model,
	}
}

func (c *Client) Name() string { return config.ProviderOpenAI }

func (c *Client) Configured() bool { return c.apiKey != "" }

func (c *Client) Generate(ctx context.Context, req upstream.Request) (string, error) {
	resp, err := c.openaiClient.Chat.Completions.New(ctx, buildParams(c.modelName, req))
	if err != nil {
		var apiErr *openai.Error
		if errors.As(err, &apiErr) {
			return "", &upstream.StatusError{Code: apiErr.StatusCode, Body: apiErr.RawJSON()}
		}
		return "", fmt.Errorf("OpenAI client error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return "", nil
	}
	return resp.Choices[0].Message.Content, nil
}

func buildParams(model string, req upstream.Request) openai.ChatCompletionNewParams {
	userParts := make([]openai.ChatCompletionContentPartUnionParam, 0, 2)
	if req.Image != nil {
		userParts = append(userParts, openai.ImageContentPart(openai.ChatCompletionContentPartImageImageURLParam{
			URL: req.Image.String(),
		}))
	}
	userParts = append(userParts, openai.TextContentPart(req.Prompt))

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if req.SystemInstruction != "" {
		messages = append(messages, openai.SystemMessage(req.SystemInstruction))
	}
	messages = append(messages, openai.UserMessage(userParts))

	params := openai.ChatCompletionNewParams{
		Model:    shared.ChatModel(model),
		Messages: messages,
	}

	if req.Schema != nil {
		params.ResponseFormat = openai.ChatCompletionNewParamsResponseFormatUnion{
			OfJSONSchema: &shared.ResponseFormatJSONSchemaParam{
				JSONSchema: shared.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   schemaName,
					Schema: req.Schema,
					Strict: openai.Bool(true),
				},
			},
		}
	}
	return params
}
