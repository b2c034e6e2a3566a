package watcher

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/lecture-quiz/internal/logger"
)

const defaultSettleDelay = 500 * time.Millisecond

// New creates a Watcher on inboxDir. At most maxConcurrent handlers run at once.
func New(inboxDir string, handler EventHandler, log logger.Logger, maxConcurrent int) (Watcher, error) {
	if err := os.MkdirAll(inboxDir, 0755); err != nil {
		return nil, fmt.Errorf("create inbox: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inboxDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}

	return &implWatcher{
		inboxDir:    inboxDir,
		handler:     handler,
		logger:      log,
		watcher:     watcher,
		sem:         newSemaphore(maxConcurrent),
		settleDelay: defaultSettleDelay,
	}, nil
}
