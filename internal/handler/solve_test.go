package handler

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
	"github.com/bytedance/sonic"
	"github.com/kdduha/sceramath/internal/config"
	"github.com/kdduha/sceramath/internal/models"
	"github.com/kdduha/sceramath/internal/service"
)

type stubService struct {
	solution []byte
	err      error
	calls    int
}

func (s *stubService) Solve(_ context.Context, _ *models.SolveRequest) ([]byte, error) {
	s.calls++
	return s.solution, s.err
}

func newTestRouter(svc solveService) http.Handler {
	logger := log.New(io.Discard, "", 0)
	return NewRouter(config.ServerConfig{ThrottleLimit: 10, Timeout: time.Minute}, NewSolveHandler(logger, svc))
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, SolvePath, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	if err := sonic.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode error body %q: %v", rec.Body.String(), err)
	}
	return resp.Error
}

func TestSolveMissingPrompt(t *testing.T) {
	svc := &stubService{}
	h := newTestRouter(svc)

	for _, body := range []string{`{}`, `{"prompt":""}`, `{"image":"data:image/png;base64,AAAA"}`} {
		rec := post(t, h, body)
		testboil.FailTestIfDiff(t, rec.Code, http.StatusBadRequest)
		testboil.FailTestIfDiff(t, decodeError(t, rec), "Prompt is required")
		testboil.FailTestIfDiff(t, rec.Header().Get("Content-Type"), "application/json")
	}
	testboil.FailTestIfDiff(t, svc.calls, 0)
}

func TestSolveSuccess(t *testing.T) {
	body := `{"problemSummary":"x","steps":[{"title":"t","description":"d","latex":"x=1"}],"finalAnswer":"1","conceptExplanation":"c","relatedFormulas":[]}`
	svc := &stubService{solution: []byte(body)}

	rec := post(t, newTestRouter(svc), `{"prompt":"solve x-1=0"}`)
	testboil.FailTestIfDiff(t, rec.Code, http.StatusOK)
	testboil.FailTestIfDiff(t, rec.Header().Get("Content-Type"), "application/json")

	var got models.MathSolution
	if err := sonic.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	testboil.FailTestIfDiff(t, got.ProblemSummary, "x")
	testboil.FailTestIfDiff(t, got.Steps[0].Latex, "x=1")
	testboil.AssertStringContains(t, rec.Body.String(), `"relatedFormulas":[]`)
}

func TestSolveWritesModelJSONUnchanged(t *testing.T) {
	body := `{"problemSummary":"x","steps":[{"title":"t","description":"d","latex":""}],"finalAnswer":4,"difficulty":"easy"}`
	rec := post(t, newTestRouter(&stubService{solution: []byte(body)}), `{"prompt":"p"}`)
	testboil.FailTestIfDiff(t, rec.Code, http.StatusOK)
	testboil.FailTestIfDiff(t, rec.Body.String(), body)
}

func TestSolveErrorMapping(t *testing.T) {
	tests := []struct {
		err     error
		wantMsg string
	}{
		{err: service.ErrAPIKeyMissing, wantMsg: "API key not configured"},
		{err: fmt.Errorf("%w: status 500", service.ErrUpstream), wantMsg: "Failed to process math problem"},
		{err: fmt.Errorf("%w: bad json", service.ErrMalformedSolution), wantMsg: "The logic engine failed to synthesize a response"},
		{err: service.ErrInvalidImage, wantMsg: "The logic engine failed to synthesize a response"},
	}
	for _, tc := range tests {
		t.Run(tc.wantMsg, func(t *testing.T) {
			rec := post(t, newTestRouter(&stubService{err: tc.err}), `{"prompt":"p"}`)
			testboil.FailTestIfDiff(t, rec.Code, http.StatusInternalServerError)
			testboil.FailTestIfDiff(t, decodeError(t, rec), tc.wantMsg)
			if strings.Contains(rec.Body.String(), "status 500") {
				t.Fatal("upstream details must not reach the client")
			}
		})
	}
}

func TestSolveInvalidJSON(t *testing.T) {
	rec := post(t, newTestRouter(&stubService{}), `not json`)
	testboil.FailTestIfDiff(t, rec.Code, http.StatusInternalServerError)
	testboil.FailTestIfDiff(t, decodeError(t, rec), "The logic engine failed to synthesize a response")
}

func TestPreflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, SolvePath, nil)
	req.Header.Set("Origin", "https://app.example.com")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type, Apikey")
	rec := httptest.NewRecorder()
	newTestRouter(&stubService{}).ServeHTTP(rec, req)

	testboil.FailTestIfDiff(t, rec.Code, http.StatusOK)
	testboil.FailTestIfDiff(t, rec.Header().Get("Access-Control-Allow-Origin"), "*")
	testboil.AssertStringContains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestCORSOnActualRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, SolvePath, strings.NewReader(`{}`))
	req.Header.Set("Origin", "https://app.example.com")
	rec := httptest.NewRecorder()
	newTestRouter(&stubService{}).ServeHTTP(rec, req)

	testboil.FailTestIfDiff(t, rec.Header().Get("Access-Control-Allow-Origin"), "*")
}
