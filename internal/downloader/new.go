package downloader

import (
	"errors"

	"github.com/nguyentantai21042004/lecture-quiz/internal/config"
	"github.com/nguyentantai21042004/lecture-quiz/internal/logger"
	"github.com/nguyentantai21042004/lecture-quiz/pkg/executor"
)

// ErrDownloadFailed covers unreachable, unsupported or invalid URLs.
var ErrDownloadFailed = errors.New("download failed")

type implDownloader struct {
	cfg      config.DownloaderConfig
	executor executor.Executor
	logger   logger.Logger
}

// New creates a Downloader backed by yt-dlp.
func New(cfg *config.Config, exec executor.Executor, log logger.Logger) Downloader {
	return &implDownloader{
		cfg:      cfg.Downloader,
		executor: exec,
		logger:   log,
	}
}
