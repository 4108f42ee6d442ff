package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	app "github.com/rocketscienceinc/tictactoe-client/internal"
	"github.com/rocketscienceinc/tictactoe-client/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "config.yml", "path to the config file")
	journalSession := flag.String("journal", "", "print the round journal of a session and exit")
	flag.Parse()

	conf := initConfig(*configPath)

	if *journalSession != "" {
		if err := app.PrintJournal(context.Background(), conf, *journalSession, os.Stdout); err != nil {
			panic(fmt.Errorf("print journal failed: %w", err))
		}

		return
	}

	logger, closeLog := initLogger(conf)
	defer closeLog()

	if err := app.RunApp(logger, conf); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

// initialize config.
func initConfig(path string) *config.Config {
	if !filepath.IsAbs(path) {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}

		path = filepath.Join(baseDir, path)
	}

	return config.MustLoad(path)
}

// initialize logger. The terminal belongs to the UI, so logs go to a file.
func initLogger(conf *config.Config) (*slog.Logger, func()) {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	file, err := os.OpenFile(conf.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		panic(fmt.Errorf("failed to open log file: %w", err))
	}

	logger := slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{Level: level}))

	return logger, func() { _ = file.Close() }
}
