// Package client dispatches math problems to the solve-math proxy.
package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/kdduha/sceramath/internal/models"
	"github.com/kdduha/sceramath/pkg/solution"
)

const solvePath = "/functions/v1/solve-math"

type (
	MathSolution = solution.MathSolution
	MathStep     = solution.MathStep
)

var ErrEmptyPrompt = errors.New("prompt is empty")

// APIError is a non-2xx answer from the proxy.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("solve-math returned %d: %s", e.StatusCode, e.Message)
}

type Client struct {
	httpClient *http.Client
	endpoint   string
	anonKey    string
}

func New(baseURL, anonKey string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		httpClient: httpClient,
		endpoint:   strings.TrimRight(baseURL, "/") + solvePath,
		anonKey:    anonKey,
	}
}

// Solve sends one request to the proxy. There is no retry.
func (c *Client) Solve(ctx context.Context, prompt, image string) (*MathSolution, error) {
	if strings.TrimSpace(prompt) == "" {
		return nil, ErrEmptyPrompt
	}

	body, err := sonic.Marshal(models.SolveRequest{Prompt: prompt, Image: image})
	if err != nil {
		return nil, fmt.Errorf("marshal req: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.anonKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.anonKey)
		httpReq.Header.Set("Apikey", c.anonKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Message: errorMessage(raw)}
	}

	var sol MathSolution
	if err := sonic.Unmarshal(raw, &sol); err != nil {
		return nil, fmt.Errorf("decode solution: %w", err)
	}
	return sol.Normalize(), nil
}

func errorMessage(raw []byte) string {
	var resp models.ErrorResponse
	if err := sonic.Unmarshal(raw, &resp); err == nil && resp.Error != "" {
		return resp.Error
	}
	return strings.TrimSpace(string(raw))
}
