// Package upstream describes a single structured generation call against a hosted model.
package upstream

import (
	"context"
	"fmt"

	"github.com/kdduha/sceramath/internal/media"
)

// Request is one multimodal generation call: optional inline image, the user prompt,
// a system instruction and the JSON schema the answer must follow.
type Request struct {
	SystemInstruction string
	Prompt            string
	Image             *media.DataURI
	Schema            map[string]any
}

type Generator interface {
	// Name identifies the provider in logs and metrics.
	Name() string
	// Configured reports whether credentials required by the provider are present.
	Configured() bool
	// Generate returns the raw text of the first candidate.
	Generate(ctx context.Context, req Request) (string, error)
}

// StatusError is returned when the provider answers with a non-2xx status.
type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Code, e.Body)
}
