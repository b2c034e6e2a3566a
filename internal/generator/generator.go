package generator

import (
	"context"
	"fmt"
	"strings"
)

// Summarize asks the summary model for a student-friendly summary of the transcript.
func (g *implGenerator) Summarize(ctx context.Context, transcript string) (string, error) {
	g.logger.Info(ctx, "Summarizing transcript (%d chars) with %s", len(transcript), g.models.SummaryModel)

	summary, err := g.complete(ctx, Request{
		Model:       g.models.SummaryModel,
		System:      tutorPersona,
		Prompt:      fmt.Sprintf(summaryPrompt, transcript),
		Temperature: summaryTemperature,
		MaxTokens:   summaryMaxTokens,
	})
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return summary, nil
}

// GenerateQuiz asks the quiz model for numQuestions questions in the strict text layout.
func (g *implGenerator) GenerateQuiz(ctx context.Context, summary string, numQuestions int) (string, error) {
	if numQuestions <= 0 {
		numQuestions = DefaultQuestionCount
	}

	g.logger.Info(ctx, "Generating %d quiz questions with %s", numQuestions, g.models.QuizModel)

	text, err := g.complete(ctx, Request{
		Model:  g.models.QuizModel,
		Prompt: fmt.Sprintf(quizPrompt, numQuestions, summary),
	})
	if err != nil {
		return "", fmt.Errorf("generate quiz: %w", err)
	}
	return text, nil
}

// GenerateNotes explains the missed topics using the original transcript.
func (g *implGenerator) GenerateNotes(ctx context.Context, mistakes []string, transcript string) string {
	if len(mistakes) == 0 {
		return NotesAllCorrect
	}

	g.logger.Info(ctx, "Generating notes for %d missed questions", len(mistakes))

	notes, err := g.complete(ctx, Request{
		Model:       g.models.NotesModel,
		System:      tutorPersona,
		Prompt:      fmt.Sprintf(notesPrompt, strings.Join(mistakes, ", "), transcript),
		Temperature: notesTemperature,
		MaxTokens:   notesMaxTokens,
	})
	if err != nil {
		g.logger.Error(ctx, "Error generating extended notes: %v", err)
		return NotesFallback
	}
	return notes
}

func (g *implGenerator) complete(ctx context.Context, req Request) (string, error) {
	text, err := g.completer.Complete(ctx, req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationFailed, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty response from %s", ErrGenerationFailed, req.Model)
	}
	return text, nil
}
