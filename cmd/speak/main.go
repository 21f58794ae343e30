package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"discord-speakable/internal/adapters/exporter"
	"discord-speakable/internal/adapters/guild"
	"discord-speakable/internal/adapters/parser"
	"discord-speakable/internal/adapters/source"
	"discord-speakable/internal/core/services"
	"discord-speakable/internal/domain"
	"discord-speakable/internal/log"
	"discord-speakable/internal/pkg/config"
	"discord-speakable/internal/pkg/term"
	"discord-speakable/internal/ports"
)

type options struct {
	configPath   string
	filePath     string
	snapshotPath string
	xlsxPath     string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", config.DefaultConfigFile, "путь к config.yml")
	flag.StringVar(&opts.filePath, "file", "", "файл с текстом сообщения")
	flag.StringVar(&opts.snapshotPath, "guild", "", "JSON-снимок сервера для разрешения упоминаний")
	flag.StringVar(&opts.xlsxPath, "xlsx", "", "сохранить результат в .xlsx")
	flag.Parse()

	if err := run(opts); err != nil {
		slog.Error("speak failed", "error", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	// Логи идут в stderr, чтобы не смешиваться с озвученным текстом
	logger := log.NewMaskedLogger(log.NewHandler(os.Stderr, log.ParseLevel(cfg.Logging.Level), cfg.Logging.Format), cfg.Discord.Token)
	slog.SetDefault(logger)

	loc, err := cfg.Location()
	if err != nil {
		return err
	}
	speech := services.NewSpeechService(
		services.WithLogger(logger.With("component", "speech")),
		services.WithPhrases(cfg.Phrases()),
		services.WithDateFormatter(services.NewDateFormatter(loc)),
	)

	var g ports.Guild
	if opts.snapshotPath != "" {
		registry := guild.NewRegistry(logger.With("component", "registry"))
		snapshot, err := registry.Load(parser.NewJsonParser(), source.NewCliSource(opts.snapshotPath))
		if err != nil {
			return err
		}
		g = snapshot
	}

	exporters := []ports.Exporter{exporter.NewConsoleExporter(os.Stdout)}
	var xlsx *exporter.ExcelExporter
	if opts.xlsxPath != "" {
		if xlsx, err = exporter.NewExcelExporter(opts.xlsxPath); err != nil {
			return err
		}
		exporters = append(exporters, xlsx)
	}
	out := exporter.NewMultiExporter(exporters...)

	t := term.NewTerminal()
	switch {
	case opts.filePath != "":
		err = speakOnce(speech, g, out, source.NewCliSource(opts.filePath))
	case !t.Interactive():
		err = speakOnce(speech, g, out, source.NewReaderSource(os.Stdin, source.DefaultReadLimit))
	default:
		err = repl(t, speech, g, exporters[1:])
	}

	if xlsx != nil {
		if closeErr := xlsx.Close(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("failed to save %s: %w", opts.xlsxPath, closeErr))
		} else {
			slog.Info("Transcript saved", "path", opts.xlsxPath, "rows", xlsx.Rows())
		}
	}
	return err
}

func speakOnce(speech ports.SpeechRenderer, g ports.Guild, out ports.Exporter, src ports.DataSource) error {
	u, err := speak(speech, g, src)
	if err != nil {
		return err
	}
	return out.Export(u)
}

// repl читает сообщения построчно до конца ввода; пустые строки пропускаются.
func repl(t *term.Terminal, speech ports.SpeechRenderer, g ports.Guild, extra []ports.Exporter) error {
	out := exporter.NewMultiExporter(extra...)
	for {
		line, err := t.ReadLine("> ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		if line == "" {
			continue
		}

		u, err := speak(speech, g, source.NewMemorySource([]byte(line)))
		if err != nil {
			return err
		}
		if err := t.Println(u.Text); err != nil {
			return err
		}
		if err := out.Export(u); err != nil {
			return err
		}
	}
}

func speak(speech ports.SpeechRenderer, g ports.Guild, src ports.DataSource) (domain.Utterance, error) {
	data, err := src.Fetch()
	if err != nil {
		return domain.Utterance{}, err
	}
	return newUtterance(g, speech.Speak(string(data), g)), nil
}

func newUtterance(g ports.Guild, text string) domain.Utterance {
	u := domain.Utterance{Text: text}
	if g != nil {
		u.GuildID = g.ID()
	}
	return u
}
