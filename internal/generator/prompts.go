package generator

const (
	DefaultQuestionCount = 10

	// NotesAllCorrect is returned without calling the model when nothing was missed.
	NotesAllCorrect = "🎉 Great job! You mastered all topics."
	// NotesFallback replaces the notes when the model call fails.
	NotesFallback = "❌ Could not generate extended notes."

	tutorPersona = "You are a helpful AI teacher."
)

const summaryPrompt = `
Summarize the following lecture in a clear, simple, and student-friendly way.
%s
`

const quizPrompt = `
Based on the following summary, generate %d multiple-choice quiz questions.

Format STRICTLY like this:
1. Question?
    A) Option 1
    B) Option 2
    C) Option 3
    D) Option 4
    Correct Answer: B

Summary: %s
`

const notesPrompt = `
The student made mistakes in the following quiz questions/topics:
%s

Based on the original lecture transcript below, explain these topics
in detail with examples and clear explanations so the student can
understand better.

Transcript: %s
`

// Sampling settings per call. Zero values leave the provider default in place.
const (
	summaryTemperature = 0.4
	summaryMaxTokens   = 800
	notesTemperature   = 0.5
	notesMaxTokens     = 800
)
