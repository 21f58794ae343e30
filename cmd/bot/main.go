package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"discord-speakable/internal/adapters/exporter"
	"discord-speakable/internal/bot"
	"discord-speakable/internal/core/services"
	"discord-speakable/internal/log"
	"discord-speakable/internal/pkg/config"
	"discord-speakable/internal/ports"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigFile, "путь к config.yml")
	transcript := flag.String("transcript", "", "сохранить стенограмму в .xlsx при завершении")
	flag.Parse()

	// Загрузка конфигурации бота
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to validate config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.ValidateDiscord(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to validate discord config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера с маскировкой токенов; логи discordgo идут через него же
	level := log.ParseLevel(cfg.Logging.Level)
	logger := log.NewMaskedLogger(log.NewHandler(os.Stderr, level, cfg.Logging.Format), cfg.Discord.Token)
	slog.SetDefault(logger)
	log.InstallDiscordgoLogger(logger)

	if err := run(cfg, logger, level, *transcript); err != nil {
		slog.Error("bot run failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger, level slog.Level, transcriptPath string) error {
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	speech := services.NewSpeechService(
		services.WithLogger(logger.With(slog.String("component", "speech"))),
		services.WithPhrases(cfg.Phrases()),
		services.WithDateFormatter(services.NewDateFormatter(loc)),
	)

	exporters := []ports.Exporter{exporter.NewConsoleExporter(os.Stdout)}
	var xlsx *exporter.ExcelExporter
	if transcriptPath != "" {
		xlsx, err = exporter.NewExcelExporter(transcriptPath)
		if err != nil {
			return fmt.Errorf("failed to create transcript: %w", err)
		}
		exporters = append(exporters, xlsx)
	}

	b, err := bot.NewBot(cfg.Discord.Token, speech, exporter.NewMultiExporter(exporters...),
		bot.WithLogger(logger.With(slog.String("component", "bot"))),
		bot.WithIgnoreBots(cfg.Discord.IgnoreBots),
		bot.WithChannels(cfg.Discord.Channels),
		bot.WithSessionLogLevel(log.DiscordgoLogLevel(level)),
	)
	if err != nil {
		return fmt.Errorf("failed to create bot: %w", err)
	}

	// Ожидание сигналов для graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	slog.Info("Bot created successfully, starting...")
	err = b.Start(ctx)

	if xlsx != nil {
		if closeErr := xlsx.Close(); closeErr != nil {
			slog.Error("failed to save transcript", slog.String("error", closeErr.Error()))
		} else {
			slog.Info("Transcript saved", slog.String("path", transcriptPath), slog.Int("utterances", xlsx.Rows()))
		}
	}
	if err != nil {
		return err
	}

	slog.Info("Bot stopped gracefully")
	return nil
}
