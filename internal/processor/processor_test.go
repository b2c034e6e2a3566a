package processor

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nguyentantai21042004/lecture-quiz/internal/config"
	"github.com/nguyentantai21042004/lecture-quiz/internal/downloader"
	"github.com/nguyentantai21042004/lecture-quiz/internal/exporter"
	"github.com/nguyentantai21042004/lecture-quiz/internal/logger"
	"github.com/nguyentantai21042004/lecture-quiz/internal/quiz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleQuiz = `1. What is Go?
A) A language
B) A game
C) A car
D) A fruit
Correct Answer: A

2. Who created Go?
A) Apple
B) Google
C) IBM
D) Oracle
Correct Answer: B`

// fakeExecutor writes whatever output file the command would produce.
type fakeExecutor struct {
	calls []string
	err   error
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	f.calls = append(f.calls, name)
	if f.err != nil {
		return "", f.err
	}
	for i, a := range args {
		if a == "-of" && i+1 < len(args) {
			return "", os.WriteFile(args[i+1]+".txt", []byte("  hello\n\n world  "), 0644)
		}
	}
	return "", os.WriteFile(args[len(args)-1], []byte("RIFF"), 0644)
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir, name string, args ...string) (string, error) {
	return f.Execute(ctx, name, args...)
}

type fakeDownloader struct {
	ext string
	err error
}

func (f *fakeDownloader) Download(ctx context.Context, rawURL, destDir string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	path := filepath.Join(destDir, "lecture"+f.ext)
	return path, os.WriteFile(path, []byte("media"), 0644)
}

type fakeTranscriber struct {
	gotPath string
	text    string
	err     error
}

func (f *fakeTranscriber) Transcribe(ctx context.Context, audioPath string) (string, error) {
	f.gotPath = audioPath
	if _, err := os.Stat(audioPath); err != nil {
		return "", fmt.Errorf("%w: %v", ErrTranscriptionFailed, err)
	}
	if f.err != nil {
		return "", f.err
	}
	return f.text, nil
}

type fakeGenerator struct {
	summaryErr  error
	gotCount    int
	gotMistakes []string
}

func (f *fakeGenerator) Summarize(ctx context.Context, transcript string) (string, error) {
	if f.summaryErr != nil {
		return "", f.summaryErr
	}
	return "summary of " + transcript, nil
}

func (f *fakeGenerator) GenerateQuiz(ctx context.Context, summary string, n int) (string, error) {
	f.gotCount = n
	return sampleQuiz, nil
}

func (f *fakeGenerator) GenerateNotes(ctx context.Context, mistakes []string, transcript string) string {
	f.gotMistakes = mistakes
	return "notes for " + strings.Join(mistakes, ", ")
}

type fakeExporter struct {
	name string
	pack exporter.Pack
}

func (f *fakeExporter) Export(ctx context.Context, name string, pack exporter.Pack) ([]string, error) {
	f.name = name
	f.pack = pack
	return []string{name + ".md"}, nil
}

type fixture struct {
	cfg  *config.Config
	exec *fakeExecutor
	dl   *fakeDownloader
	tr   *fakeTranscriber
	gen  *fakeGenerator
	exp  *fakeExporter
	proc Processor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{}
	cfg.Server.QuestionCount = 2
	cfg.FFmpeg.BinaryPath = "ffmpeg"
	cfg.Paths.Temp = filepath.Join(root, "temp")
	cfg.Paths.Archived = filepath.Join(root, "archived")

	f := &fixture{
		cfg:  cfg,
		exec: &fakeExecutor{},
		dl:   &fakeDownloader{ext: ".mp4"},
		tr:   &fakeTranscriber{text: "lecture text"},
		gen:  &fakeGenerator{},
		exp:  &fakeExporter{},
	}
	f.proc = New(cfg, f.exec, f.dl, f.tr, f.gen, f.exp, logger.NewNop())
	return f
}

func (f *fixture) assertTempEmpty(t *testing.T) {
	t.Helper()
	entries, err := os.ReadDir(f.cfg.Paths.Temp)
	require.NoError(t, err)
	assert.Empty(t, entries, "temp dir should be empty after a request")
}

func TestProcessURL(t *testing.T) {
	f := newFixture(t)

	result, err := f.proc.Process(context.Background(), Source{Kind: SourceURL, URL: "https://example.com/v"})
	require.NoError(t, err)

	assert.Equal(t, "lecture text", result.Transcript)
	assert.Equal(t, "summary of lecture text", result.Summary)
	require.Len(t, result.Questions, 2)
	assert.Equal(t, "Who created Go?", result.Questions[1].Question)
	assert.Equal(t, quiz.AnswerKey{1: "A", 2: "B"}, result.AnswerKey)
	assert.Equal(t, 2, f.gen.gotCount)

	assert.Equal(t, []string{"ffmpeg"}, f.exec.calls)
	assert.Equal(t, ".wav", filepath.Ext(f.tr.gotPath))
	f.assertTempEmpty(t)
}

func TestProcessPassesSupportedAudioThrough(t *testing.T) {
	f := newFixture(t)
	f.dl.ext = ".mp3"

	_, err := f.proc.Process(context.Background(), Source{Kind: SourceURL, URL: "https://example.com/a"})
	require.NoError(t, err)

	assert.Empty(t, f.exec.calls)
	assert.Equal(t, "lecture.mp3", filepath.Base(f.tr.gotPath))
	f.assertTempEmpty(t)
}

func TestProcessUpload(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		wantConvert bool
	}{
		{name: "wav upload", filename: "talk.WAV", wantConvert: false},
		{name: "video upload", filename: "my talk.mp4", wantConvert: true},
		{name: "no extension", filename: "recording", wantConvert: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			_, err := f.proc.Process(context.Background(), Source{
				Kind:     SourceUpload,
				Filename: tt.filename,
				Body:     strings.NewReader("data"),
			})
			require.NoError(t, err)

			assert.Equal(t, tt.wantConvert, len(f.exec.calls) == 1)
			f.assertTempEmpty(t)
		})
	}
}

func TestProcessUploadWithoutBody(t *testing.T) {
	f := newFixture(t)

	_, err := f.proc.Process(context.Background(), Source{Kind: SourceUpload, Filename: "a.wav"})
	assert.ErrorIs(t, err, ErrInvalidSource)
	f.assertTempEmpty(t)
}

func TestProcessFileIsNotDeleted(t *testing.T) {
	f := newFixture(t)
	src := filepath.Join(t.TempDir(), "lecture.mkv")
	require.NoError(t, os.WriteFile(src, []byte("video"), 0644))

	_, err := f.proc.Process(context.Background(), Source{Kind: SourceFile, Path: src})
	require.NoError(t, err)

	assert.FileExists(t, src)
	f.assertTempEmpty(t)
}

func TestProcessErrors(t *testing.T) {
	genErr := errors.New("llm down")

	tests := []struct {
		name    string
		setup   func(f *fixture)
		src     Source
		wantErr error
	}{
		{
			name:    "download failure",
			setup:   func(f *fixture) { f.dl.err = fmt.Errorf("%w: unreachable", downloader.ErrDownloadFailed) },
			src:     Source{Kind: SourceURL, URL: "https://nope.invalid/v"},
			wantErr: downloader.ErrDownloadFailed,
		},
		{
			name:    "conversion failure",
			setup:   func(f *fixture) { f.exec.err = errors.New("exit status 1") },
			src:     Source{Kind: SourceURL, URL: "https://example.com/v"},
			wantErr: ErrConversionFailed,
		},
		{
			name:    "transcription failure",
			setup:   func(f *fixture) { f.tr.err = ErrTranscriptionFailed },
			src:     Source{Kind: SourceURL, URL: "https://example.com/v"},
			wantErr: ErrTranscriptionFailed,
		},
		{
			name:    "summary failure",
			setup:   func(f *fixture) { f.gen.summaryErr = genErr },
			src:     Source{Kind: SourceURL, URL: "https://example.com/v"},
			wantErr: genErr,
		},
		{
			name:    "missing local file",
			setup:   func(f *fixture) {},
			src:     Source{Kind: SourceFile, Path: "/does/not/exist.mp4"},
			wantErr: ErrInvalidSource,
		},
		{
			name:    "unknown kind",
			setup:   func(f *fixture) {},
			src:     Source{Kind: "ftp"},
			wantErr: ErrInvalidSource,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			result, err := f.proc.Process(context.Background(), tt.src)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, tt.wantErr)
			f.assertTempEmpty(t)
		})
	}
}

func TestTranscribeOnly(t *testing.T) {
	f := newFixture(t)

	text, err := f.proc.Transcribe(context.Background(), Source{Kind: SourceUpload, Filename: "a.flac", Body: strings.NewReader("x")})
	require.NoError(t, err)
	assert.Equal(t, "lecture text", text)
	assert.Zero(t, f.gen.gotCount)
	f.assertTempEmpty(t)
}

func TestSubmit(t *testing.T) {
	f := newFixture(t)

	got := f.proc.Submit(context.Background(),
		quiz.Submission{1: "A", 2: "C"},
		quiz.AnswerKey{1: "A", 2: "B"},
		"transcript",
	)

	assert.Equal(t, 1, got.Score)
	assert.Equal(t, 2, got.Total)
	assert.Equal(t, []string{"Question 2"}, got.Mistakes)
	assert.Equal(t, "notes for Question 2", got.Notes)
	assert.Equal(t, []string{"Question 2"}, f.gen.gotMistakes)
}

func TestProcessInbox(t *testing.T) {
	f := newFixture(t)
	inbox := t.TempDir()
	src := filepath.Join(inbox, "week1.mp4")
	require.NoError(t, os.WriteFile(src, []byte("video"), 0644))

	require.NoError(t, f.proc.ProcessInbox(context.Background(), src))

	assert.Equal(t, "week1", f.exp.name)
	assert.Equal(t, "week1", f.exp.pack.Title)
	assert.Len(t, f.exp.pack.Questions, 2)
	assert.NoFileExists(t, src)
	assert.FileExists(t, filepath.Join(f.cfg.Paths.Archived, "week1.mp4"))
}

func TestProcessInboxFailureKeepsFile(t *testing.T) {
	f := newFixture(t)
	f.tr.err = ErrTranscriptionFailed
	src := filepath.Join(t.TempDir(), "week2.mp4")
	require.NoError(t, os.WriteFile(src, []byte("video"), 0644))

	err := f.proc.ProcessInbox(context.Background(), src)
	assert.ErrorIs(t, err, ErrTranscriptionFailed)
	assert.FileExists(t, src)
	assert.Empty(t, f.exp.name)
}

