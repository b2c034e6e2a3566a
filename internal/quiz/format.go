package quiz

import (
	"fmt"
	"strings"
)

// FormatQuizText renders questions in the layout ParseQuizText reads back.
// Questions without a key entry are rendered without an answer line.
func FormatQuizText(questions []Question, key AnswerKey) string {
	var b strings.Builder
	for i, q := range questions {
		n := i + 1
		fmt.Fprintf(&b, "%d. %s\n", n, q.Question)
		for _, letter := range Letters {
			fmt.Fprintf(&b, "    %s) %s\n", letter, q.Options.Get(letter))
		}
		if answer, ok := key[n]; ok {
			fmt.Fprintf(&b, "    Correct Answer: %s\n", answer)
		}
		b.WriteString("\n")
	}
	return b.String()
}
