package processor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
)

// transcriberFormats are read directly by whisper-cli; everything else,
// video containers included, goes through ffmpeg first.
var transcriberFormats = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".flac": true,
	".ogg":  true,
}

func needsConversion(path string) bool {
	return !transcriberFormats[strings.ToLower(filepath.Ext(path))]
}

// normalizeAudio returns a path whisper can read. When ffmpeg had to run,
// converted is true and the caller owns the new file.
func (p *implProcessor) normalizeAudio(ctx context.Context, ws *workspace, mediaPath string) (audioPath string, converted bool, err error) {
	if !needsConversion(mediaPath) {
		p.logger.Debug(ctx, "Audio passes through unchanged: %s", mediaPath)
		return mediaPath, false, nil
	}

	audioPath = ws.file(".wav")
	p.logger.Info(ctx, "Extracting audio: %s", mediaPath)

	// mono, 16kHz, 16-bit PCM: the waveform whisper expects
	args := []string{
		"-nostdin",
		"-hide_banner",
		"-loglevel", "error",
		"-y",
		"-i", mediaPath,
		"-vn",
		"-acodec", "pcm_s16le",
		"-ar", "16000",
		"-ac", "1",
		"-threads", "0",
		audioPath,
	}

	if _, err := p.executor.Execute(ctx, p.cfg.FFmpeg.BinaryPath, args...); err != nil {
		p.cleanupTempFile(ctx, audioPath)
		return "", false, fmt.Errorf("%w: %v", ErrConversionFailed, err)
	}

	p.logger.Info(ctx, "Audio extracted successfully: %s", audioPath)
	return audioPath, true, nil
}
