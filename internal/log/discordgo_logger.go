package log

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// discordgoLevel переводит уровень discordgo в уровень slog.
func discordgoLevel(msgL int) slog.Level {
	switch msgL {
	case discordgo.LogError:
		return slog.LevelError
	case discordgo.LogWarning:
		return slog.LevelWarn
	case discordgo.LogInformational:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// NewDiscordgoLogger возвращает функцию, совместимую с discordgo.Logger,
// которая пишет сообщения библиотеки в logger.
func NewDiscordgoLogger(logger *slog.Logger) func(msgL, caller int, format string, a ...interface{}) {
	logger = logger.With("component", "discordgo")
	return func(msgL, caller int, format string, a ...interface{}) {
		level := discordgoLevel(msgL)
		if !logger.Enabled(context.Background(), level) {
			return
		}
		logger.Log(context.Background(), level, fmt.Sprintf(format, a...))
	}
}

// InstallDiscordgoLogger направляет глобальный логгер discordgo в logger.
func InstallDiscordgoLogger(logger *slog.Logger) {
	discordgo.Logger = NewDiscordgoLogger(logger)
}

// DiscordgoLogLevel подбирает уровень логирования сессии discordgo под уровень slog.
func DiscordgoLogLevel(level slog.Level) int {
	switch {
	case level <= slog.LevelDebug:
		return discordgo.LogDebug
	case level <= slog.LevelInfo:
		return discordgo.LogInformational
	case level <= slog.LevelWarn:
		return discordgo.LogWarning
	default:
		return discordgo.LogError
	}
}
