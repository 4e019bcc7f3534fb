package client

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/baalimago/go_away_boilerplate/pkg/testboil"
	"github.com/bytedance/sonic"
	"github.com/kdduha/sceramath/internal/models"
)

func TestSolve(t *testing.T) {
	var got models.SolveRequest
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		testboil.FailTestIfDiff(t, r.URL.Path, "/functions/v1/solve-math")
		testboil.FailTestIfDiff(t, r.Header.Get("Authorization"), "Bearer anon")
		testboil.FailTestIfDiff(t, r.Header.Get("Apikey"), "anon")
		body, _ := io.ReadAll(r.Body)
		_ = sonic.Unmarshal(body, &got)
		_, _ = w.Write([]byte(`{"problemSummary":"x","steps":[],"finalAnswer":"1","conceptExplanation":"c","relatedFormulas":[]}`))
	}))
	defer srv.Close()

	c := New(srv.URL+"/", "anon", srv.Client())
	sol, err := c.Solve(context.Background(), "2+2", "data:image/png;base64,AA")
	if err != nil {
		t.Fatalf("solve: %v", err)
	}
	testboil.FailTestIfDiff(t, calls, 1)
	testboil.FailTestIfDiff(t, got.Prompt, "2+2")
	testboil.FailTestIfDiff(t, got.Image, "data:image/png;base64,AA")
	testboil.FailTestIfDiff(t, sol.ProblemSummary, "x")
	testboil.FailTestIfDiff(t, len(sol.RelatedFormulas), 0)
}

func TestSolveAPIErrorNoRetry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to process math problem"}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, "", srv.Client()).Solve(context.Background(), "p", "")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected APIError, got %v", err)
	}
	testboil.FailTestIfDiff(t, apiErr.StatusCode, http.StatusInternalServerError)
	testboil.FailTestIfDiff(t, apiErr.Message, "Failed to process math problem")
	testboil.FailTestIfDiff(t, calls, 1)
}

func TestSolveUndecodableBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>`))
	}))
	defer srv.Close()

	if _, err := New(srv.URL, "", srv.Client()).Solve(context.Background(), "p", ""); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestSolveEmptyPrompt(t *testing.T) {
	_, err := New("http://unused", "", nil).Solve(context.Background(), "  ", "")
	if !errors.Is(err, ErrEmptyPrompt) {
		t.Fatalf("expected ErrEmptyPrompt, got %v", err)
	}
}
