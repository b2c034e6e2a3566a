package quiz

import (
	"regexp"
	"strings"
)

var (
	// reBlockStart finds the start of each numbered item ("3. ...") on its own line.
	// The ordinal must be followed by a blank or the line end, so "3.5 * 2" is not one.
	reBlockStart = regexp.MustCompile(`(?m)^[ \t]*\d+\.(?:[ \t]|$)`)

	// reItem matches one item: question, options A-D and the answer line.
	// The question may span lines; option texts may not.
	reItem = regexp.MustCompile(`(?s)^\s*\d+\.\s*(.*?)\n\s*A\)([^\n]*)\n\s*B\)([^\n]*)\n\s*C\)([^\n]*)\n\s*D\)([^\n]*)\n\s*Correct Answer:\s*([A-D])`)
)

// ParseQuizText extracts questions and their answer key from free-form model output.
//
// Extraction is best effort: blocks that do not follow the expected layout are
// dropped, so fewer questions than requested may come back. Items are numbered
// 1..n in the order they appear, which keeps the key aligned with the slice.
// An input with no usable items yields an empty, non-nil result.
func ParseQuizText(raw string) ([]Question, AnswerKey) {
	questions := make([]Question, 0)
	key := make(AnswerKey)

	text := strings.ReplaceAll(raw, "\r\n", "\n")

	for _, block := range splitBlocks(text) {
		m := reItem.FindStringSubmatch(block)
		if m == nil {
			continue
		}

		question := strings.TrimSpace(m[1])
		if question == "" {
			continue
		}

		questions = append(questions, Question{
			Question: question,
			Options: Options{
				A: strings.TrimSpace(m[2]),
				B: strings.TrimSpace(m[3]),
				C: strings.TrimSpace(m[4]),
				D: strings.TrimSpace(m[5]),
			},
		})
		key[len(questions)] = m[6]
	}

	return questions, key
}

func splitBlocks(text string) []string {
	starts := reBlockStart.FindAllStringIndex(text, -1)
	blocks := make([]string, 0, len(starts))
	for i, loc := range starts {
		end := len(text)
		if i+1 < len(starts) {
			end = starts[i+1][0]
		}
		blocks = append(blocks, text[loc[0]:end])
	}
	return blocks
}
