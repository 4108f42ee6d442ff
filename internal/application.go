package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-client/internal/config"
	"github.com/rocketscienceinc/tictactoe-client/internal/repository"
	"github.com/rocketscienceinc/tictactoe-client/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-client/internal/telemetry"
	"github.com/rocketscienceinc/tictactoe-client/internal/transport/rest"
	"github.com/rocketscienceinc/tictactoe-client/internal/tui"
	"github.com/rocketscienceinc/tictactoe-client/internal/usecase"
)

const serviceVersion = "v0.1.0"

var ErrJournalDisabled = errors.New("redis journal is disabled in config")

// RunApp - runs the terminal client until the user quits or a signal arrives.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	shutdownTelemetry, err := telemetry.Init(ctx, telemetry.Config{
		Endpoint:       conf.Telemetry.OTLPEndpoint,
		ServiceName:    conf.Telemetry.ServiceName,
		ServiceVersion: serviceVersion,
	})
	if err != nil {
		return fmt.Errorf("could not init telemetry: %w", err)
	}

	defer func() {
		if err = shutdownTelemetry(context.Background()); err != nil {
			log.Error("could not shut down telemetry", "error", err)
		}
	}()

	sessionID := uuid.NewString()
	journal, closeJournal := openJournal(ctx, log, conf, sessionID)
	defer closeJournal()

	client := rest.New(logger, rest.Config{
		BaseURL:         conf.Service.BaseURL,
		Timeout:         conf.Service.Timeout,
		MaxAttempts:     conf.Retry.MaxAttempts,
		InitialInterval: conf.Retry.InitialInterval,
		MaxInterval:     conf.Retry.MaxInterval,
	})

	reconciler := usecase.NewReconciler(logger, client, journal, clock.New(), conf.Animation.MoveDelay)
	defer reconciler.Close()

	model := tui.New(ctx, logger, reconciler, tui.Choices{
		GameModes:     conf.Options.GameModes,
		Difficulties:  conf.Options.Difficulties,
		PlayerChoices: conf.Options.PlayerChoices,
	})

	log.Info("Starting client", "service", conf.Service.BaseURL, "session", sessionID)

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err = program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("terminal UI error: %w", err)
	}

	log.Info("Client stopped", "session", sessionID)

	return nil
}

// openJournal falls back to a no-op journal when Redis is disabled or down.
func openJournal(
	ctx context.Context,
	log *slog.Logger,
	conf *config.Config,
	sessionID string,
) (repository.JournalRepository, func()) {
	if !conf.Redis.Enabled {
		return repository.NewNoopJournal(), func() {}
	}

	client, err := storage.NewRedis(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		log.Warn("round journal disabled", "error", err)

		return repository.NewNoopJournal(), func() {}
	}

	closeClient := func() {
		if err := client.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	return repository.NewJournalRepository(client, sessionID), closeClient
}

// PrintJournal writes the journal of a past session to w, one JSON object per line.
func PrintJournal(ctx context.Context, conf *config.Config, sessionID string, w io.Writer) error {
	if !conf.Redis.Enabled {
		return ErrJournalDisabled
	}

	client, err := storage.NewRedis(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}
	defer client.Close()

	entries, err := repository.NewJournalRepository(client, sessionID).Entries(ctx)
	if err != nil {
		return fmt.Errorf("could not read journal: %w", err)
	}

	encoder := json.NewEncoder(w)
	for _, entry := range entries {
		if err = encoder.Encode(entry); err != nil {
			return fmt.Errorf("could not write journal entry: %w", err)
		}
	}

	return nil
}
