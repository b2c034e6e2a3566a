package downloader

import "context"

// Downloader fetches remote media into a local directory.
type Downloader interface {
	// Download stores the best available stream of rawURL in destDir
	// and returns the path of the materialized file.
	Download(ctx context.Context, rawURL, destDir string) (string, error)
}
