package processor

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nguyentantai21042004/lecture-quiz/internal/downloader"
	"github.com/nguyentantai21042004/lecture-quiz/internal/exporter"
	"github.com/nguyentantai21042004/lecture-quiz/internal/quiz"
)

// Process orchestrates the entire lecture pipeline. Nothing partial is
// returned on failure, and every temporary file is gone when it returns.
func (p *implProcessor) Process(ctx context.Context, src Source) (*Result, error) {
	startTime := time.Now()

	ws, err := p.newWorkspace(ctx)
	if err != nil {
		return nil, err
	}
	defer p.removeWorkspace(ctx, ws)

	// Step 1-3: acquire, normalize, transcribe
	transcript, err := p.transcribeSource(ctx, ws, src)
	if err != nil {
		return nil, err
	}

	// Step 4: summarize
	summary, err := p.generator.Summarize(ctx, transcript)
	if err != nil {
		return nil, err
	}

	// Step 5: quiz
	quizText, err := p.generator.GenerateQuiz(ctx, summary, p.cfg.Server.QuestionCount)
	if err != nil {
		return nil, err
	}

	questions, key := quiz.ParseQuizText(quizText)
	if len(questions) < p.cfg.Server.QuestionCount {
		p.logger.Warn(ctx, "Quiz parser kept %d of %d requested questions", len(questions), p.cfg.Server.QuestionCount)
	}

	p.logger.Info(ctx, "Processing completed in %s (%d questions)", time.Since(startTime), len(questions))

	return &Result{
		Transcript: transcript,
		Summary:    summary,
		Questions:  questions,
		AnswerKey:  key,
	}, nil
}

// Transcribe runs only the acquire, normalize and transcribe steps.
func (p *implProcessor) Transcribe(ctx context.Context, src Source) (string, error) {
	ws, err := p.newWorkspace(ctx)
	if err != nil {
		return "", err
	}
	defer p.removeWorkspace(ctx, ws)

	return p.transcribeSource(ctx, ws, src)
}

// Submit grades the answers and asks for notes on whatever was missed.
// It always returns a result; notes fall back to a fixed message on failure.
func (p *implProcessor) Submit(ctx context.Context, sub quiz.Submission, key quiz.AnswerKey, transcript string) GradingResult {
	grade := quiz.GradeSubmission(sub, key)
	p.logger.Info(ctx, "Graded submission: %d/%d", grade.Score, grade.Total)

	return GradingResult{
		Score:    grade.Score,
		Total:    grade.Total,
		Mistakes: grade.Mistakes,
		Notes:    p.generator.GenerateNotes(ctx, grade.Mistakes, transcript),
	}
}

// ProcessInbox handles a file dropped into the inbox: full pipeline,
// study pack export, then the source moves to the archive.
func (p *implProcessor) ProcessInbox(ctx context.Context, path string) error {
	p.logger.Info(ctx, "Starting inbox processing: %s", path)

	result, err := p.Process(ctx, Source{Kind: SourceFile, Path: path})
	if err != nil {
		return fmt.Errorf("process %s: %w", path, err)
	}

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	files, err := p.exporter.Export(ctx, name, exporter.Pack{
		Title:      name,
		Transcript: result.Transcript,
		Summary:    result.Summary,
		Questions:  result.Questions,
		AnswerKey:  result.AnswerKey,
	})
	if err != nil {
		return fmt.Errorf("export %s: %w", name, err)
	}

	if err := p.moveToArchived(ctx, path); err != nil {
		p.logger.Warn(ctx, "Failed to move original to archived folder: %v", err)
	}

	p.logger.Info(ctx, "Inbox file done: %s -> %s", path, strings.Join(files, ", "))
	return nil
}

func (p *implProcessor) transcribeSource(ctx context.Context, ws *workspace, src Source) (string, error) {
	mediaPath, owned, err := p.acquire(ctx, ws, src)
	if err != nil {
		return "", err
	}
	if owned {
		defer p.cleanupTempFile(ctx, mediaPath)
	}

	audioPath, converted, err := p.normalizeAudio(ctx, ws, mediaPath)
	if err != nil {
		return "", err
	}
	if converted {
		defer p.cleanupTempFile(ctx, audioPath)
	}

	return p.transcriber.Transcribe(ctx, audioPath)
}

// acquire materializes the source as a local file. The bool reports whether the
// file was created for this request and must be removed after use.
func (p *implProcessor) acquire(ctx context.Context, ws *workspace, src Source) (string, bool, error) {
	switch src.Kind {
	case SourceURL:
		path, err := p.downloader.Download(ctx, src.URL, ws.dir)
		if err != nil {
			return "", false, fmt.Errorf("download: %w", err)
		}
		return path, true, nil

	case SourceUpload:
		path, err := p.saveUpload(ctx, ws, src)
		if err != nil {
			return "", false, err
		}
		return path, true, nil

	case SourceFile:
		if _, err := os.Stat(src.Path); err != nil {
			return "", false, fmt.Errorf("%w: %v", ErrInvalidSource, err)
		}
		return src.Path, false, nil

	default:
		return "", false, fmt.Errorf("%w: unknown source kind %q", ErrInvalidSource, src.Kind)
	}
}

func (p *implProcessor) saveUpload(ctx context.Context, ws *workspace, src Source) (string, error) {
	if src.Body == nil {
		return "", fmt.Errorf("%w: upload has no body", ErrInvalidSource)
	}

	// Keep the extension: it decides whether ffmpeg has to run.
	ext := strings.ToLower(filepath.Ext(downloader.SanitizeFilename(filepath.Base(src.Filename))))
	path := ws.file(ext)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	n, err := io.Copy(f, src.Body)
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		p.cleanupTempFile(ctx, path)
		return "", fmt.Errorf("save upload: %w", err)
	}

	p.logger.Info(ctx, "Upload saved: %s (%d bytes)", src.Filename, n)
	return path, nil
}
