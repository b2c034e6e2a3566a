package generator

import "context"

// Generator produces summaries, quizzes and remedial notes from lecture text.
type Generator interface {
	Summarize(ctx context.Context, transcript string) (string, error)
	// GenerateQuiz returns the model's raw quiz text; parsing is the caller's job.
	GenerateQuiz(ctx context.Context, summary string, numQuestions int) (string, error)
	// GenerateNotes never fails: it falls back to NotesFallback on API errors.
	GenerateNotes(ctx context.Context, mistakes []string, transcript string) string
}

// Request is a single chat completion call.
type Request struct {
	Model       string
	System      string
	Prompt      string
	Temperature float32
	MaxTokens   int
}

// Completer sends one prompt to a hosted model and returns its text reply.
type Completer interface {
	Complete(ctx context.Context, req Request) (string, error)
}
