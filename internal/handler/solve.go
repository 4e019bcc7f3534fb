package handler

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/kdduha/sceramath/internal/models"
	"github.com/kdduha/sceramath/internal/service"
)

const (
	msgPromptRequired = "Prompt is required"
	msgAPIKeyMissing  = "API key not configured"
	msgUpstreamFailed = "Failed to process math problem"
	msgEngineFailed   = "The logic engine failed to synthesize a response"
)

type solveService interface {
	Solve(ctx context.Context, req *models.SolveRequest) ([]byte, error)
}

type SolveHandler struct {
	logger  *log.Logger
	service solveService
}

func NewSolveHandler(logger *log.Logger, service solveService) *SolveHandler {
	return &SolveHandler{
		logger:  logger,
		service: service,
	}
}

// Solve godoc
// @Summary Solve math problem
// @Description Solve a typed or photographed math problem. Image is sent as a data URI in JSON.
// @Tags solve
// @Accept json
// @Produce json
// @Param request body models.SolveRequest true "Solve request"
// @Success 200 {object} models.MathSolution
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /functions/v1/solve-math [post]
func (h *SolveHandler) Solve(w http.ResponseWriter, r *http.Request) {
	var req models.SolveRequest
	if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Printf("Error in solve-math function: invalid JSON: %v\n", err)
		writeError(w, http.StatusInternalServerError, msgEngineFailed)
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, msgPromptRequired)
		return
	}

	resp, err := h.service.Solve(r.Context(), &req)
	if err != nil {
		h.logger.Printf("Error in solve-math function: %v\n", err)
		status, msg := statusFor(err)
		writeError(w, status, msg)
		return
	}

	writeRaw(w, http.StatusOK, resp)
}

func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrAPIKeyMissing):
		return http.StatusInternalServerError, msgAPIKeyMissing
	case errors.Is(err, service.ErrUpstream):
		return http.StatusInternalServerError, msgUpstreamFailed
	default:
		return http.StatusInternalServerError, msgEngineFailed
	}
}
