package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"discord-speakable/internal/adapters/guild"
	"discord-speakable/internal/adapters/parser"
	"discord-speakable/internal/adapters/source"
	"discord-speakable/internal/core/services"
	"discord-speakable/internal/log"
	"discord-speakable/internal/pkg/config"
	"discord-speakable/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application run failed", "error", err)
		os.Exit(1)
	}
}

// run инкапсулирует всю логику инициализации и запуска приложения.
func run() error {
	configPath := flag.String("config", config.DefaultConfigFile, "путь к config.yml")
	flag.Parse()

	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// 2. Инициализация логгера
	logger := log.NewMaskedLogger(log.NewHandler(os.Stdout, log.ParseLevel(cfg.Logging.Level), cfg.Logging.Format), cfg.Discord.Token)
	slog.SetDefault(logger)

	// 3. Валидация конфигурации (после инициализации логгера)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	// 4. Загрузка снимков серверов
	registry := guild.NewRegistry(logger.With("component", "registry"))
	jsonParser := parser.NewJsonParser()
	for _, path := range cfg.Discord.Snapshots {
		if _, err := registry.Load(jsonParser, source.NewCliSource(path)); err != nil {
			return fmt.Errorf("failed to load guild snapshot %s: %w", path, err)
		}
	}

	// 5. Создание сервиса озвучивания и HTTP-сервера
	speech := services.NewSpeechService(
		services.WithLogger(logger.With("component", "speech")),
		services.WithPhrases(cfg.Phrases()),
		services.WithDateFormatter(services.NewDateFormatter(loc)),
	)

	srv, err := server.New(cfg, speech, registry)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	// 6. Запуск сервера и graceful shutdown
	serverDone := make(chan struct{})
	go func() {
		defer close(serverDone)
		slog.Info("Starting server", "addr", cfg.Address(), "snapshots", len(cfg.Discord.Snapshots))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case <-quit:
		slog.Info("Signal received, shutting down...")
	case <-serverDone:
		return errors.New("server stopped unexpectedly")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
	}

	<-serverDone
	slog.Info("Application exited gracefully")
	return nil
}
