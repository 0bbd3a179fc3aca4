package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/brettboylen/reddit-simulator/api"
	"github.com/brettboylen/reddit-simulator/dataset"
	"github.com/brettboylen/reddit-simulator/db"
	"github.com/brettboylen/reddit-simulator/generator"
	"github.com/brettboylen/reddit-simulator/handlers"
	"github.com/brettboylen/reddit-simulator/prompt"
	"github.com/brettboylen/reddit-simulator/sampler"
	"github.com/brettboylen/reddit-simulator/stats"
	"github.com/brettboylen/reddit-simulator/utils"
)

func main() {
	envPath := flag.String("env", ".env", "Path to .env file")
	logLevel := flag.String("log-level", "info", "Logging level (debug, info, warn, error)")
	flag.Parse()

	log := setupLogger(*logLevel)
	log.Info("Starting Reddit Simulator")

	config, err := utils.LoadConfig(*envPath, log)
	if err != nil {
		log.WithError(err).Fatal("Failed to load configuration")
	}

	log.WithFields(logrus.Fields{
		"app":          config.App.Name,
		"version":      config.App.Version,
		"model":        config.LLM.Model,
		"base_url":     config.LLM.BaseURL,
		"server_port":  config.Server.Port,
		"public_dir":   config.Server.PublicDir,
		"archive_path": config.Database.Path,
	}).Info("Configuration loaded")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	datasets := dataset.Load(ctx, dataset.Paths{
		Slang:  config.Data.SlangPath,
		Emoji:  config.Data.EmojiPath,
		Reddit: config.Data.RedditPath,
	}, log)

	// the archive is optional; analytics work without it
	var archive *db.Database
	if config.Database.Path != "" {
		archive, err = db.NewDatabase(config.Database.Path, log)
		if err != nil {
			log.WithError(err).Warn("Comment archive unavailable, continuing without it")
			archive = nil
		} else {
			defer archive.Close()
		}
	}

	rng := sampler.New(config.App.RandomSeed)

	chatClient := api.NewChatClient(api.ClientConfig{
		APIKey:      config.LLM.APIKey,
		BaseURL:     config.LLM.BaseURL,
		Model:       config.LLM.Model,
		MaxTokens:   config.LLM.MaxTokens,
		Temperature: config.LLM.Temperature,
		Timeout:     config.LLM.Timeout,
		MaxRetries:  config.LLM.MaxRetries,
	}, log)

	collector := stats.NewCollector(log)

	// typed nil pointers must not leak into the interfaces
	var saver generator.Archive
	var reader handlers.ArchiveReader
	if archive != nil {
		saver = archive
		reader = archive
	}

	gen := generator.NewGenerator(
		chatClient,
		prompt.NewBuilder(datasets.Slang, datasets.Emoji, rng),
		collector,
		saver,
		rng,
		log,
	)

	handler := handlers.NewHandler(
		datasets,
		gen,
		generator.NewHumanResponder(rng),
		collector,
		reader,
		log,
	)

	e := handlers.NewRouter(handler, handlers.RouterConfig{
		PublicDir:          config.Server.PublicDir,
		RateLimitPerMinute: config.Server.RateLimitPerMinute,
	}, log)

	done := make(chan struct{})
	go func() {
		defer close(done)
		startServer(ctx, e, config.Server.Port, log)
	}()

	waitForShutdown(cancel, done, log)
}

// setupLogger sets up the logger with the specified log level
func setupLogger(level string) *logrus.Logger {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})

	switch level {
	case "debug":
		log.SetLevel(logrus.DebugLevel)
	case "info":
		log.SetLevel(logrus.InfoLevel)
	case "warn":
		log.SetLevel(logrus.WarnLevel)
	case "error":
		log.SetLevel(logrus.ErrorLevel)
	default:
		log.SetLevel(logrus.InfoLevel)
	}

	return log
}

// startServer runs the Echo server until ctx is cancelled and in-flight requests drain
func startServer(ctx context.Context, e *echo.Echo, port int, log *logrus.Logger) {
	go func() {
		serverAddr := fmt.Sprintf(":%d", port)
		log.WithField("port", port).Info("Starting HTTP server")
		if err := e.Start(serverAddr); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Fatal("HTTP server failed")
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down HTTP server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("HTTP server shutdown failed")
	}
}

// waitForShutdown waits for a shutdown signal, then for the server to stop
func waitForShutdown(cancel context.CancelFunc, serverDone <-chan struct{}, log *logrus.Logger) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigChan
	log.WithField("signal", sig.String()).Info("Shutdown signal received")

	cancel()

	<-serverDone
	log.Info("Reddit Simulator stopped")
}
