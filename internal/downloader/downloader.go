package downloader

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/nguyentantai21042004/lecture-quiz/pkg/executor"
)

// Download runs yt-dlp and reports where the merged file ended up.
func (d *implDownloader) Download(ctx context.Context, rawURL, destDir string) (string, error) {
	rawURL = strings.TrimSpace(rawURL)
	if err := validateURL(rawURL); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	d.logger.Info(ctx, "Downloading media: %s", rawURL)

	// --print after_move:filepath prints the final path once merging is done
	// and, being a post-download stage, does not switch yt-dlp into simulate mode.
	args := []string{
		"--no-playlist",
		"--no-progress",
		"--restrict-filenames",
		"-f", d.cfg.Format,
		"--merge-output-format", d.cfg.MergeFormat,
		"-o", filepath.Join(destDir, "%(title)s.%(ext)s"),
		"--print", "after_move:filepath",
		"--", rawURL,
	}

	out, err := d.executor.Execute(ctx, d.cfg.BinaryPath, args...)
	if err != nil {
		var cmdErr *executor.CommandError
		if errors.As(err, &cmdErr) && cmdErr.Stderr != "" {
			d.logger.Warn(ctx, "yt-dlp failed for %s: %s", rawURL, lastLine(cmdErr.Stderr))
		}
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	path := lastLine(out)
	if path == "" {
		return "", fmt.Errorf("%w: yt-dlp reported no output file", ErrDownloadFailed)
	}
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	path, err = sanitizeOnDisk(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDownloadFailed, err)
	}

	d.logger.Info(ctx, "Media downloaded: %s", path)
	return path, nil
}

func validateURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("url is empty")
	}
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("unsupported url scheme %q", u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("url has no host")
	}
	return nil
}

func lastLine(out string) string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	return strings.TrimSpace(lines[len(lines)-1])
}

// sanitizeOnDisk renames path so its base name only holds safe characters.
func sanitizeOnDisk(path string) (string, error) {
	dir, base := filepath.Split(path)
	clean := SanitizeFilename(base)
	if clean == base {
		return path, nil
	}

	target := filepath.Join(dir, clean)
	if err := os.Rename(path, target); err != nil {
		return "", fmt.Errorf("rename download: %w", err)
	}
	return target, nil
}
