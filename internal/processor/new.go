package processor

import (
	"github.com/nguyentantai21042004/lecture-quiz/internal/config"
	"github.com/nguyentantai21042004/lecture-quiz/internal/downloader"
	"github.com/nguyentantai21042004/lecture-quiz/internal/exporter"
	"github.com/nguyentantai21042004/lecture-quiz/internal/generator"
	"github.com/nguyentantai21042004/lecture-quiz/internal/logger"
	"github.com/nguyentantai21042004/lecture-quiz/pkg/executor"
)

type implProcessor struct {
	cfg         *config.Config
	executor    executor.Executor
	downloader  downloader.Downloader
	transcriber Transcriber
	generator   generator.Generator
	exporter    exporter.Exporter
	logger      logger.Logger
}

// New creates a new Processor instance
func New(
	cfg *config.Config,
	exec executor.Executor,
	dl downloader.Downloader,
	tr Transcriber,
	gen generator.Generator,
	exp exporter.Exporter,
	log logger.Logger,
) Processor {
	return &implProcessor{
		cfg:         cfg,
		executor:    exec,
		downloader:  dl,
		transcriber: tr,
		generator:   gen,
		exporter:    exp,
		logger:      log,
	}
}
