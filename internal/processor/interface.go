package processor

import (
	"context"
	"io"

	"github.com/nguyentantai21042004/lecture-quiz/internal/quiz"
)

// Processor runs the lecture pipeline: acquire, normalize, transcribe, summarize, quiz.
type Processor interface {
	Process(ctx context.Context, src Source) (*Result, error)
	Transcribe(ctx context.Context, src Source) (string, error)
	Submit(ctx context.Context, sub quiz.Submission, key quiz.AnswerKey, transcript string) GradingResult
	ProcessInbox(ctx context.Context, path string) error
}

// Transcriber turns an audio file into plain text.
type Transcriber interface {
	Transcribe(ctx context.Context, audioPath string) (string, error)
}

type SourceKind string

const (
	SourceURL    SourceKind = "url"
	SourceUpload SourceKind = "upload"
	// SourceFile is a file already on disk; the pipeline never deletes it.
	SourceFile SourceKind = "file"
)

// Source says where the lecture media comes from.
type Source struct {
	Kind     SourceKind
	URL      string
	Filename string
	Body     io.Reader
	Path     string
}

// Result is the outcome of a successful Process call.
type Result struct {
	Transcript string
	Summary    string
	Questions  []quiz.Question
	AnswerKey  quiz.AnswerKey
}

type GradingResult struct {
	Score    int
	Total    int
	Mistakes []string
	Notes    string
}
