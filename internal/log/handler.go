package log

import (
	"io"
	"log/slog"
	"os"
	"strings"

	charm "github.com/charmbracelet/log"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ParseLevel переводит уровень из конфигурации в slog.Level; неизвестное значение - info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// NewHandler создает обработчик по формату из конфигурации:
// json, text или console (цветной вывод для терминала).
func NewHandler(w io.Writer, level slog.Level, format string) slog.Handler {
	switch format {
	case "text":
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	case "console":
		logger := charm.NewWithOptions(w, charm.Options{
			Level:           charm.Level(level),
			ReportTimestamp: true,
		})
		if !isTerminal(w) {
			logger.SetColorProfile(termenv.Ascii)
		}
		return logger
	default:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
