package httpapi

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nguyentantai21042004/lecture-quiz/internal/processor"
)

func (a *API) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{Status: "ok"})
}

func (a *API) handleProcess(c *gin.Context) {
	ctx := c.Request.Context()

	var src processor.Source
	switch c.PostForm("type") {
	case sourceTypeUpload:
		fh, err := c.FormFile("file")
		if err != nil {
			// Browsers send an empty file input as a plain field.
			if errors.Is(err, http.ErrMissingFile) && c.Request.MultipartForm != nil {
				if _, ok := c.Request.MultipartForm.Value["file"]; ok {
					writeError(c, http.StatusBadRequest, "No selected file")
					return
				}
			}
			writeError(c, http.StatusBadRequest, "No file part")
			return
		}
		if fh.Filename == "" {
			writeError(c, http.StatusBadRequest, "No selected file")
			return
		}

		f, err := fh.Open()
		if err != nil {
			a.logger.Error(ctx, "Failed to open upload %s: %v", fh.Filename, err)
			writeError(c, http.StatusInternalServerError, "An error occurred while processing the request.")
			return
		}
		defer f.Close()

		src = processor.Source{Kind: processor.SourceUpload, Filename: fh.Filename, Body: f}

	case sourceTypeURL:
		src = processor.Source{Kind: processor.SourceURL, URL: c.PostForm("url")}

	default:
		writeError(c, http.StatusBadRequest, "Invalid data type")
		return
	}

	result, err := a.processor.Process(ctx, src)
	if err != nil {
		a.writeServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, toProcessResponse(result.Transcript, result.Summary, result.Questions, result.AnswerKey))
}

func (a *API) handleSubmitQuiz(c *gin.Context) {
	var req submitQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	key, err := parseAnswerKey(req.AnswerKey)
	if err != nil {
		writeError(c, http.StatusBadRequest, err.Error())
		return
	}

	result := a.processor.Submit(c.Request.Context(), parseSubmission(req.UserAnswers), key, req.Transcript)

	c.JSON(http.StatusOK, submitQuizResponse{
		Score: result.Score,
		Total: result.Total,
		Notes: result.Notes,
	})
}
