package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/nguyentantai21042004/lecture-quiz/internal/config"
	"github.com/nguyentantai21042004/lecture-quiz/internal/downloader"
	"github.com/nguyentantai21042004/lecture-quiz/internal/exporter"
	"github.com/nguyentantai21042004/lecture-quiz/internal/generator"
	"github.com/nguyentantai21042004/lecture-quiz/internal/httpapi"
	"github.com/nguyentantai21042004/lecture-quiz/internal/logger"
	"github.com/nguyentantai21042004/lecture-quiz/internal/processor"
	"github.com/nguyentantai21042004/lecture-quiz/internal/watcher"
	"github.com/nguyentantai21042004/lecture-quiz/pkg/executor"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath, ".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	app := fx.New(
		fx.Supply(cfg),
		fx.Provide(
			provideLogger,
			executor.New,
			downloader.New,
			provideCompleter,
			generator.New,
			processor.NewWhisper,
			exporter.New,
			processor.New,
			httpapi.NewAPI,
			httpapi.NewRouter,
		),
		fx.WithLogger(func(log logger.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: logger.Zap(log)}
		}),
		fx.Invoke(logStartup, startServer, startWatcher),
	)

	app.Run()
}

func provideLogger(cfg *config.Config) logger.Logger {
	return logger.New(cfg.Logging.Level, cfg.Logging.Format)
}

func provideCompleter(cfg *config.Config) (generator.Completer, error) {
	return generator.NewCompleter(context.Background(), cfg)
}

func logStartup(cfg *config.Config, log logger.Logger) error {
	ctx := context.Background()
	log.Info(ctx, "========================================")
	log.Info(ctx, "Lecture Quiz Service")
	log.Info(ctx, "========================================")
	log.Info(ctx, "System: %s/%s, CPU cores: %d", runtime.GOOS, runtime.GOARCH, runtime.NumCPU())
	log.Info(ctx, "Whisper model: %s (%d threads)", processor.ModelPath(cfg), cfg.Whisper.Threads)
	log.Info(ctx, "LLM provider: %s (summary: %s, quiz: %s)", cfg.LLM.Provider, cfg.LLM.SummaryModel, cfg.LLM.QuizModel)

	if _, err := os.Stat(processor.ModelPath(cfg)); err != nil {
		log.Warn(ctx, "Whisper model not found: %v", err)
	}
	return ensureDirectories(cfg)
}

func startServer(lc fx.Lifecycle, cfg *config.Config, router *gin.Engine, log logger.Logger) {
	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", srv.Addr, err)
			}
			log.Info(ctx, "HTTP server listening on %s", ln.Addr())
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Error(context.Background(), "HTTP server error: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info(ctx, "Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}

func startWatcher(lc fx.Lifecycle, cfg *config.Config, proc processor.Processor, log logger.Logger) error {
	if !cfg.Watcher.Enabled {
		return nil
	}

	w, err := watcher.New(cfg.Paths.Inbox, proc.ProcessInbox, log, cfg.Watcher.MaxConcurrent)
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	runCtx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				defer close(done)
				if err := w.Start(runCtx); err != nil && !errors.Is(err, context.Canceled) {
					log.Error(runCtx, "Watcher error: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-ctx.Done():
				log.Warn(ctx, "Inbox jobs still running at shutdown")
			}
			return w.Stop()
		},
	})
	return nil
}

// ensureDirectories creates required directories if they don't exist
func ensureDirectories(cfg *config.Config) error {
	dirs := []string{cfg.Paths.Temp}
	if cfg.Watcher.Enabled {
		dirs = append(dirs, cfg.Paths.Inbox, cfg.Paths.Output, cfg.Paths.Archived)
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create directory %s: %w", dir, err)
		}
	}

	return nil
}
