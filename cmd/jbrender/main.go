// Package main provides the jbrender command. It loads a TOML scene file,
// renders it to stdout through the colorize effects, and logs progress to
// stderr plus an optional per-run JSON log file.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jblib/jblib-go/internal/logging"
	"github.com/jblib/jblib-go/internal/render"
	"github.com/jblib/jblib-go/internal/terminal"
)

// Error definitions
var (
	ErrScenePathRequired = errors.New("scene file path is required")
)

var (
	scenePath = flag.String("scene", "", "path to scene file")
	logLevel  = flag.String("log-level", "info", "log level (debug, info, warn, error)")
	logDir    = flag.String("log-dir", "", "directory to place the per-run JSON log (auto-named)")
	noColor   = flag.Bool("no-color", false, "disable colored log output")
)

func main() {
	// Generate run ID early so every log line of this run carries it
	runID := logging.GenerateRunID()

	if err := run(runID); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(runID string) error {
	flag.Parse()

	// Set up context with cancellation so a pulse line stops cleanly
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := setupLogger(*logLevel, *logDir, *noColor, runID); err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	if *scenePath == "" {
		return ErrScenePathRequired
	}

	scene, err := render.NewLoader().Load(*scenePath)
	if err != nil {
		slog.Error("Failed to load scene", "path", *scenePath, "error", err)
		return err
	}

	slog.Info("Scene loaded", "path", *scenePath, "title", scene.Title, "lines", len(scene.Lines))

	if err := render.NewRenderer(os.Stdout).RenderScene(ctx, scene); err != nil {
		slog.Error("Rendering failed", "error", err)
		return err
	}

	slog.Info("Scene rendered", "lines", len(scene.Lines))
	return nil
}

// setupLogger initializes the logging system. Console lines go to stderr
// because stdout carries the rendered scene.
func setupLogger(level, logDir string, noColor bool, runID string) error {
	var slogLevel slog.Level
	invalidLogLevel := false
	if err := slogLevel.UnmarshalText([]byte(level)); err != nil {
		slogLevel = slog.LevelInfo // Default to info on parse error
		invalidLogLevel = true
	}

	var handlers []slog.Handler

	// 1. Human-readable console handler
	useColor := terminal.SupportsColor(int(os.Stderr.Fd()), terminal.Preference{DisableColor: noColor})
	consoleHandler, err := logging.NewConsoleHandler(logging.ConsoleHandlerOptions{
		Level:     slogLevel,
		Writer:    os.Stderr,
		Formatter: logging.NewDefaultMessageFormatter(),
		UseColor:  useColor,
	})
	if err != nil {
		return err
	}
	handlers = append(handlers, consoleHandler)

	// 2. Machine-readable log handler (to file, per-run auto-named)
	if logDir != "" {
		if err := logging.ValidateLogDir(logDir); err != nil {
			return fmt.Errorf("invalid log directory: %w", err)
		}

		logF, err := logging.OpenLogFile(logging.LogFilePath(logDir, runID))
		if err != nil {
			return err
		}

		jsonHandler := slog.NewJSONHandler(logF, &slog.HandlerOptions{
			Level: slogLevel,
		})

		hostname, err := os.Hostname()
		if err != nil {
			hostname = "unknown"
		}

		// Attach common attributes
		enrichedHandler := jsonHandler.WithAttrs([]slog.Attr{
			slog.String("hostname", hostname),
			slog.Int("pid", os.Getpid()),
			slog.Int("schema_version", 1),
			slog.String("run_id", runID),
		})
		handlers = append(handlers, enrichedHandler)
	}

	// Set as default logger
	slog.SetDefault(slog.New(logging.NewMultiHandler(handlers...)))

	slog.Debug("Logger initialized", "log-level", level, "log-dir", logDir, "run_id", runID)

	// Warn about invalid log level after logger is properly set up
	if invalidLogLevel {
		slog.Warn("Invalid log level provided, defaulting to INFO", "provided", level)
	}

	return nil
}
