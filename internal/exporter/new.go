package exporter

import (
	"github.com/nguyentantai21042004/lecture-quiz/internal/config"
	"github.com/nguyentantai21042004/lecture-quiz/internal/logger"
)

type implExporter struct {
	outputDir string
	logger    logger.Logger
}

// New creates an Exporter writing Markdown and DOCX files into paths.output.
func New(cfg *config.Config, log logger.Logger) Exporter {
	return &implExporter{
		outputDir: cfg.Paths.Output,
		logger:    log,
	}
}
