package httpapi

import (
	"github.com/nguyentantai21042004/lecture-quiz/internal/logger"
	"github.com/nguyentantai21042004/lecture-quiz/internal/processor"
)

const (
	sourceTypeUpload = "upload"
	sourceTypeURL    = "url"
)

type API struct {
	processor processor.Processor
	logger    logger.Logger
}

func NewAPI(proc processor.Processor, log logger.Logger) *API {
	return &API{
		processor: proc,
		logger:    log,
	}
}
