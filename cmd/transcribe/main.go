package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nguyentantai21042004/lecture-quiz/internal/config"
	"github.com/nguyentantai21042004/lecture-quiz/internal/downloader"
	"github.com/nguyentantai21042004/lecture-quiz/internal/logger"
	"github.com/nguyentantai21042004/lecture-quiz/internal/processor"
	"github.com/nguyentantai21042004/lecture-quiz/pkg/executor"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	file := flag.String("file", "", "local audio or video file to transcribe")
	url := flag.String("url", "", "URL of the lecture to download and transcribe")
	out := flag.String("out", "transcript.txt", "where to write the transcript")
	flag.Parse()

	if (*file == "") == (*url == "") {
		fmt.Fprintln(os.Stderr, "exactly one of -file or -url is required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath, ".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	exec := executor.New()
	// Transcription never reaches the generator or the exporter.
	proc := processor.New(cfg, exec, downloader.New(cfg, exec, log), processor.NewWhisper(cfg, exec, log), nil, nil, log)

	src := processor.Source{Kind: processor.SourceFile, Path: *file}
	if *url != "" {
		src = processor.Source{Kind: processor.SourceURL, URL: *url}
	}

	transcript, err := proc.Transcribe(ctx, src)
	if err != nil {
		log.Error(ctx, "Transcription failed: %v", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, []byte(transcript+"\n"), 0644); err != nil {
		log.Error(ctx, "Failed to write transcript: %v", err)
		os.Exit(1)
	}

	log.Info(ctx, "Transcript written to %s", *out)
}
