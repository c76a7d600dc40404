package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/ytkit/youtube-data-mcp/internal/config"
	"github.com/ytkit/youtube-data-mcp/internal/registry"
	"github.com/ytkit/youtube-data-mcp/internal/server"
	"github.com/ytkit/youtube-data-mcp/internal/youtube"
)

func main() {
	// CRITICAL: Redirect standard log output to stderr first (before any logging).
	// stdout carries the stdio MCP transport.
	log.SetOutput(os.Stderr)

	// Create structured logger (JSON format to stderr)
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Create context with signal handling for clean shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Load configuration from environment. A missing YOUTUBE_API_KEY fails here.
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Create the YouTube API client. The API service itself is built lazily
	// on the first tool call.
	ytClient := youtube.NewClient(cfg.APIKey)

	// Build the tool registry and run the MCP server.
	reg := registry.New(ytClient, registry.Options{TranscriptLang: cfg.TranscriptLang})
	logger.Info("tools registered", "count", len(reg.List()))

	srv := server.NewServer(logger, reg, cfg.Transport, cfg.Port)
	if err := srv.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}
