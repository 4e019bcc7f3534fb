package gemini

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
	"github.com/bytedance/sonic"
	"github.com/kdduha/sceramath/internal/config"
	"github.com/kdduha/sceramath/internal/media"
	"github.com/kdduha/sceramath/internal/upstream"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(srv.Client(), config.GeminiConfig{
		APIKey:         "test-key",
		BaseURL:        srv.URL + "/v1beta/",
		Model:          "gemini-test",
		ThinkingBudget: 128,
	})
}

func TestGenerateBuildsRequest(t *testing.T) {
	var got generateRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		testboil.FailTestIfDiff(t, r.Method, http.MethodPost)
		testboil.FailTestIfDiff(t, r.URL.Path, "/v1beta/models/gemini-test:generateContent")
		testboil.FailTestIfDiff(t, r.URL.Query().Get("key"), "test-key")

		body, _ := io.ReadAll(r.Body)
		if err := sonic.Unmarshal(body, &got); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"{\"finalAnswer\":\"4\"}"}]}}]}`))
	})

	text, err := c.Generate(context.Background(), upstream.Request{
		SystemInstruction: "be precise",
		Prompt:            "2+2",
		Image:             &media.DataURI{MimeType: media.MimePNG, Data: "iVBOR"},
		Schema:            upstream.SolutionSchema(false),
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	testboil.FailTestIfDiff(t, text, `{"finalAnswer":"4"}`)

	parts := got.Contents[0].Parts
	testboil.FailTestIfDiff(t, len(parts), 2)
	testboil.FailTestIfDiff(t, parts[0].InlineData.MimeType, media.MimePNG)
	testboil.FailTestIfDiff(t, parts[0].InlineData.Data, "iVBOR")
	testboil.FailTestIfDiff(t, parts[1].Text, "2+2")
	testboil.FailTestIfDiff(t, got.SystemInstruction.Parts[0].Text, "be precise")
	testboil.FailTestIfDiff(t, got.GenerationConfig.ResponseMimeType, "application/json")
	testboil.FailTestIfDiff(t, got.GenerationConfig.ThinkingConfig.ThinkingBudget, 128)
	if got.GenerationConfig.ResponseSchema["required"] == nil {
		t.Fatal("response schema not forwarded")
	}
}

func TestGenerateWithoutImageSendsOnlyText(t *testing.T) {
	var got generateRequest
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = sonic.Unmarshal(body, &got)
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	})

	text, err := c.Generate(context.Background(), upstream.Request{Prompt: "x"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	testboil.FailTestIfDiff(t, text, "")
	testboil.FailTestIfDiff(t, len(got.Contents[0].Parts), 1)
	if got.SystemInstruction != nil {
		t.Fatal("empty system instruction must be omitted")
	}
}

func TestGenerateSkipsThoughtParts(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"thinking...","thought":true},{"text":"{}"}]}}]}`))
	})

	text, err := c.Generate(context.Background(), upstream.Request{Prompt: "x"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	testboil.FailTestIfDiff(t, text, "{}")
}

func TestGenerateNonSuccessStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota"}}`))
	})

	_, err := c.Generate(context.Background(), upstream.Request{Prompt: "x"})
	var statusErr *upstream.StatusError
	if !errors.As(err, &statusErr) {
		t.Fatalf("expected StatusError, got %v", err)
	}
	testboil.FailTestIfDiff(t, statusErr.Code, http.StatusTooManyRequests)
	testboil.AssertStringContains(t, statusErr.Body, "quota")
}

func TestConfigured(t *testing.T) {
	testboil.FailTestIfDiff(t, NewClient(nil, config.GeminiConfig{}).Configured(), false)
	testboil.FailTestIfDiff(t, NewClient(nil, config.GeminiConfig{APIKey: "k"}).Configured(), true)
}
