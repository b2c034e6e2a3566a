package processor

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nguyentantai21042004/lecture-quiz/internal/config"
	"github.com/nguyentantai21042004/lecture-quiz/internal/logger"
	"github.com/nguyentantai21042004/lecture-quiz/pkg/executor"
)

// ModelSize is the whisper model every transcription uses.
const ModelSize = "base"

// ModelPath is where the ggml weights for ModelSize are expected.
func ModelPath(cfg *config.Config) string {
	return filepath.Join(cfg.Whisper.ModelDir, "ggml-"+ModelSize+".bin")
}

type whisperTranscriber struct {
	cfg       config.WhisperConfig
	modelPath string
	tempDir   string
	executor  executor.Executor
	logger    logger.Logger
}

// NewWhisper creates a Transcriber that shells out to whisper.cpp.
// Build it once at startup and share it.
func NewWhisper(cfg *config.Config, exec executor.Executor, log logger.Logger) Transcriber {
	return &whisperTranscriber{
		cfg:       cfg.Whisper,
		modelPath: ModelPath(cfg),
		tempDir:   cfg.Paths.Temp,
		executor:  exec,
		logger:    log,
	}
}

// Transcribe runs whisper over audioPath and returns the transcript text.
func (w *whisperTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	if err := checkAudio(audioPath); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscriptionFailed, err)
	}

	if err := os.MkdirAll(w.tempDir, 0755); err != nil {
		return "", fmt.Errorf("%w: create temp root: %v", ErrTranscriptionFailed, err)
	}
	outDir, err := os.MkdirTemp(w.tempDir, "whisper-*")
	if err != nil {
		return "", fmt.Errorf("%w: create output dir: %v", ErrTranscriptionFailed, err)
	}
	defer os.RemoveAll(outDir)

	outputPrefix := filepath.Join(outDir, "transcript")

	w.logger.Info(ctx, "Starting transcription with %d threads: %s", w.cfg.Threads, audioPath)

	// -ng: CPU fp32 inference, same result on every host
	// -np: no progress or timing prints
	// -otxt/-of: plain text written to <prefix>.txt
	args := []string{
		"-m", w.modelPath,
		"-f", audioPath,
		"-l", w.cfg.Language,
		"-t", strconv.Itoa(w.cfg.Threads),
		"-ng",
		"-np",
		"-otxt",
		"-of", outputPrefix,
	}

	if _, err := w.executor.ExecuteInDir(ctx, outDir, w.cfg.BinaryPath, args...); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscriptionFailed, err)
	}

	data, err := os.ReadFile(outputPrefix + ".txt")
	if err != nil {
		return "", fmt.Errorf("%w: read transcript: %v", ErrTranscriptionFailed, err)
	}

	transcript := strings.Join(strings.Fields(string(data)), " ")
	w.logger.Info(ctx, "Transcription completed: %d chars", len(transcript))
	return transcript, nil
}

// checkAudio fails fast on inputs whisper cannot possibly read.
func checkAudio(path string) error {
	if path == "" {
		return fmt.Errorf("no audio file")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat audio: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("audio path %s is a directory", path)
	}
	if info.Size() == 0 {
		return fmt.Errorf("audio file %s is empty", path)
	}
	return nil
}
