package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nguyentantai21042004/lecture-quiz/internal/downloader"
	"github.com/nguyentantai21042004/lecture-quiz/internal/generator"
	"github.com/nguyentantai21042004/lecture-quiz/internal/processor"
	"github.com/nguyentantai21042004/lecture-quiz/internal/quiz"
)

const msgDownloadFailed = "Failed to download the video from the provided URL."

// writeServiceError maps a pipeline failure to a generic response. The
// underlying error is logged, never returned to the client.
func (a *API) writeServiceError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, downloader.ErrDownloadFailed):
		a.logger.Warn(ctx, "Download failed: %v", err)
		writeError(c, http.StatusInternalServerError, msgDownloadFailed)
	case errors.Is(err, processor.ErrInvalidSource):
		a.logger.Warn(ctx, "Invalid source: %v", err)
		writeError(c, http.StatusBadRequest, "Invalid media source")
	case errors.Is(err, processor.ErrConversionFailed):
		a.logger.Error(ctx, "Audio conversion failed: %v", err)
		writeError(c, http.StatusInternalServerError, "Failed to extract audio from the media file.")
	case errors.Is(err, processor.ErrTranscriptionFailed):
		a.logger.Error(ctx, "Transcription failed: %v", err)
		writeError(c, http.StatusInternalServerError, "Failed to transcribe the audio.")
	case errors.Is(err, generator.ErrGenerationFailed):
		a.logger.Error(ctx, "Generation failed: %v", err)
		writeError(c, http.StatusInternalServerError, "Failed to generate the summary and quiz.")
	default:
		a.logger.Error(ctx, "Processing failed: %v", err)
		writeError(c, http.StatusInternalServerError, "An error occurred while processing the request.")
	}
}

func writeError(c *gin.Context, status int, message string) {
	c.JSON(status, errorResponse{Error: message})
}

func toProcessResponse(transcript, summary string, questions []quiz.Question, key quiz.AnswerKey) processResponse {
	answerKey := make(map[string]string, len(key))
	for number, letter := range key {
		answerKey[strconv.Itoa(number)] = letter
	}
	if questions == nil {
		questions = []quiz.Question{}
	}
	return processResponse{
		Transcript: transcript,
		Summary:    summary,
		Quiz:       questions,
		AnswerKey:  answerKey,
	}
}

// parseAnswerKey converts JSON object keys to question numbers. Only the
// canonical form is accepted, so "01" and "1" cannot collide.
func parseAnswerKey(raw map[string]string) (quiz.AnswerKey, error) {
	key := make(quiz.AnswerKey, len(raw))
	for k, letter := range raw {
		number, ok := questionNumber(k)
		if !ok {
			return nil, fmt.Errorf("answer_key: %q is not a question number", k)
		}
		key[number] = letter
	}
	return key, nil
}

// parseSubmission is lenient: keys that are not numbers can never match
// a question, so they are dropped.
func parseSubmission(raw map[string]string) quiz.Submission {
	sub := make(quiz.Submission, len(raw))
	for k, letter := range raw {
		if number, ok := questionNumber(k); ok {
			sub[number] = letter
		}
	}
	return sub
}

func questionNumber(k string) (int, bool) {
	number, err := strconv.Atoi(k)
	if err != nil || strconv.Itoa(number) != k {
		return 0, false
	}
	return number, true
}
