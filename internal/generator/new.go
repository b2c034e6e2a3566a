package generator

import (
	"github.com/nguyentantai21042004/lecture-quiz/internal/config"
	"github.com/nguyentantai21042004/lecture-quiz/internal/logger"
)

type implGenerator struct {
	completer Completer
	logger    logger.Logger
	models    config.LLMConfig
}

// New creates a Generator that sends every prompt through completer.
func New(cfg *config.Config, completer Completer, log logger.Logger) Generator {
	return &implGenerator{
		completer: completer,
		logger:    log,
		models:    cfg.LLM,
	}
}
