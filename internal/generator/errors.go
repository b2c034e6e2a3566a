package generator

import "errors"

var (
	// ErrGenerationFailed wraps any failed or empty completion.
	ErrGenerationFailed = errors.New("content generation failed")
)
