package service

import "errors"

var (
	ErrAPIKeyMissing     = errors.New("upstream api key not configured")
	ErrUpstream          = errors.New("upstream generation failed")
	ErrInvalidImage      = errors.New("invalid image attachment")
	ErrMalformedSolution = errors.New("model output is not a valid solution")
)
