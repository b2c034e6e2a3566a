package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/lecture-quiz/internal/logger"
)

// mediaFormats are the recordings the inbox accepts.
var mediaFormats = map[string]bool{
	".mp4": true, ".mov": true, ".avi": true, ".mkv": true, ".webm": true, ".m4v": true, ".flv": true,
	".wav": true, ".mp3": true, ".m4a": true, ".flac": true, ".ogg": true, ".aac": true,
}

type implWatcher struct {
	inboxDir    string
	handler     EventHandler
	logger      logger.Logger
	watcher     *fsnotify.Watcher
	sem         *semaphore
	settleDelay time.Duration
	wg          sync.WaitGroup
}

// Start blocks until ctx is cancelled, dispatching every new recording
// in the inbox to the handler. In-flight handlers finish before it returns.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "Inbox watcher started (max concurrent: %d). Monitoring: %s", w.sem.capacity(), w.inboxDir)
	w.logger.Info(ctx, "Supported formats: %s", strings.Join(SupportedFormats(), ", "))

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "Waiting for ongoing processing to complete...")
			w.wg.Wait()
			w.logger.Info(ctx, "Inbox watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}
			if !event.Has(fsnotify.Create) {
				continue
			}
			if !IsMediaFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring non-media file: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New recording detected: %s", event.Name)

			// Give the writer a moment to finish copying the file.
			time.Sleep(w.settleDelay)

			if err := w.sem.acquire(ctx); err != nil {
				w.wg.Wait()
				return err
			}
			w.wg.Add(1)
			go func(filePath string) {
				defer w.wg.Done()
				defer w.sem.release()

				if err := w.handler(ctx, filePath); err != nil {
					w.logger.Error(ctx, "Failed to process %s: %v", filePath, err)
				}
			}(event.Name)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// IsMediaFile reports whether path has an extension the inbox accepts.
func IsMediaFile(path string) bool {
	return mediaFormats[strings.ToLower(filepath.Ext(path))]
}

// SupportedFormats lists the accepted extensions in sorted order.
func SupportedFormats() []string {
	formats := make([]string, 0, len(mediaFormats))
	for ext := range mediaFormats {
		formats = append(formats, ext)
	}
	sort.Strings(formats)
	return formats
}
