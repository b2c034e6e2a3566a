package quiz

import "sort"

// GradeSubmission scores a submission against the key. Every key entry counts once:
// exact letter match scores, anything else (including no answer) is a mistake.
// Submission entries for numbers outside the key are ignored.
func GradeSubmission(sub Submission, key AnswerKey) Grade {
	numbers := make([]int, 0, len(key))
	for n := range key {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	grade := Grade{
		Total:    len(key),
		Mistakes: make([]string, 0),
	}
	for _, n := range numbers {
		if answer, ok := sub[n]; ok && answer == key[n] {
			grade.Score++
			continue
		}
		grade.Mistakes = append(grade.Mistakes, MistakeLabel(n))
	}

	return grade
}
