package models

import (
	"errors"

	"github.com/kdduha/sceramath/pkg/solution"
)

var ErrPromptRequired = errors.New("prompt is required")

// SolveRequest represents request for solve-math endpoint
type SolveRequest struct {
	Prompt string `json:"prompt" example:"Solve x^2 - 5x + 6 = 0"`
	// Image is a data URI: data:<mime>;base64,<data>
	Image string `json:"image,omitempty" example:"data:image/jpeg;base64,/9j/4AAQSkZJRgABAQ..."`
}

func (r SolveRequest) Validate() error {
	if r.Prompt == "" {
		return ErrPromptRequired
	}
	return nil
}

// Solution types are shared with clients through pkg/solution.
type (
	MathSolution = solution.MathSolution
	MathStep     = solution.MathStep
)

type ErrorResponse struct {
	Error string `json:"error" example:"Prompt is required"`
}
