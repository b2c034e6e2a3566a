package httpapi

import (
	"github.com/gin-gonic/gin"
	"github.com/nguyentantai21042004/lecture-quiz/internal/config"
	"github.com/nguyentantai21042004/lecture-quiz/internal/logger"
)

// NewRouter builds the gin engine serving the lecture endpoints.
func NewRouter(cfg *config.Config, api *API, log logger.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.MaxMultipartMemory = cfg.Server.MaxUploadMB << 20
	r.Use(traceIDMiddleware(), accessLogMiddleware(log), recoveryMiddleware(log))

	r.GET("/healthz", api.handleHealth)
	r.POST("/process", api.handleProcess)
	r.POST("/submit_quiz", api.handleSubmitQuiz)

	return r
}
