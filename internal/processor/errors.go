package processor

import "errors"

var (
	ErrConversionFailed    = errors.New("audio conversion failed")
	ErrTranscriptionFailed = errors.New("transcription failed")
	ErrInvalidSource       = errors.New("invalid source")
)
