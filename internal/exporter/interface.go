package exporter

import (
	"context"

	"github.com/nguyentantai21042004/lecture-quiz/internal/quiz"
)

// Pack is everything produced for one lecture.
type Pack struct {
	Title      string
	Transcript string
	Summary    string
	Questions  []quiz.Question
	AnswerKey  quiz.AnswerKey
}

// Exporter writes a study pack to disk and returns the created files.
type Exporter interface {
	Export(ctx context.Context, name string, pack Pack) ([]string, error)
}
