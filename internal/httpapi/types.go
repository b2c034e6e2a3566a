package httpapi

import "github.com/nguyentantai21042004/lecture-quiz/internal/quiz"

type errorResponse struct {
	Error string `json:"error"`
}

type processResponse struct {
	Transcript string            `json:"transcript"`
	Summary    string            `json:"summary"`
	Quiz       []quiz.Question   `json:"quiz"`
	AnswerKey  map[string]string `json:"answer_key"`
}

type submitQuizRequest struct {
	UserAnswers map[string]string `json:"user_answers"`
	AnswerKey   map[string]string `json:"answer_key"`
	Transcript  string            `json:"transcript"`
}

type submitQuizResponse struct {
	Score int    `json:"score"`
	Total int    `json:"total"`
	Notes string `json:"notes"`
}

type healthResponse struct {
	Status string `json:"status"`
}
