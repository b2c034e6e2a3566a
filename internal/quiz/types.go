package quiz

import "fmt"

// Letters are the option labels every question carries, in order.
var Letters = []string{"A", "B", "C", "D"}

// Options holds the four answer choices of a question.
type Options struct {
	A string `json:"A"`
	B string `json:"B"`
	C string `json:"C"`
	D string `json:"D"`
}

// Get returns the option text for a letter, or "" for an unknown letter.
func (o Options) Get(letter string) string {
	switch letter {
	case "A":
		return o.A
	case "B":
		return o.B
	case "C":
		return o.C
	case "D":
		return o.D
	}
	return ""
}

// Question is a single multiple-choice item. The correct letter lives in the AnswerKey.
type Question struct {
	Question string  `json:"question"`
	Options  Options `json:"options"`
}

// AnswerKey maps a 1-based question number to its correct option letter.
type AnswerKey map[int]string

// Submission maps a 1-based question number to the letter the user picked.
type Submission map[int]string

// Grade is the outcome of comparing a Submission against an AnswerKey.
type Grade struct {
	Score    int
	Total    int
	Mistakes []string
}

// MistakeLabel names a missed question for the notes prompt.
func MistakeLabel(number int) string {
	return fmt.Sprintf("Question %d", number)
}
