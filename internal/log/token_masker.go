package log

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
)

const tokenMask = "***masked-token***"

// TokenMaskerHandler - обертка для slog.Handler, которая маскирует токены бота Discord в логах
type TokenMaskerHandler struct {
	handler slog.Handler
	secrets []string
}

// NewTokenMaskerHandler создает новый обработчик с маскировкой токенов.
// secrets - дополнительные строки (например, токен из конфигурации), которые маскируются дословно.
func NewTokenMaskerHandler(handler slog.Handler, secrets ...string) *TokenMaskerHandler {
	var nonEmpty []string
	for _, s := range secrets {
		if s != "" {
			nonEmpty = append(nonEmpty, s)
		}
	}
	return &TokenMaskerHandler{
		handler: handler,
		secrets: nonEmpty,
	}
}

// токен бота Discord: base64 ID пользователя, метка времени и HMAC, разделенные точками
var discordTokenRegex = regexp.MustCompile(`\b[A-Za-z0-9_-]{23,28}\.[A-Za-z0-9_-]{6,7}\.[A-Za-z0-9_-]{27,40}\b`)

// maskTokens заменяет найденные токены на маску
func (h *TokenMaskerHandler) maskTokens(text string) string {
	for _, s := range h.secrets {
		text = strings.ReplaceAll(text, s, tokenMask)
	}
	return discordTokenRegex.ReplaceAllString(text, tokenMask)
}

// Enabled реализует интерфейс slog.Handler
func (h *TokenMaskerHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}

// Handle реализует интерфейс slog.Handler
func (h *TokenMaskerHandler) Handle(ctx context.Context, record slog.Record) error {
	// Новая запись без атрибутов: оригинальную slog может переиспользовать.
	r := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)

	// Маскируем основное сообщение.
	r.Message = h.maskTokens(r.Message)

	record.Attrs(func(a slog.Attr) bool {
		r.AddAttrs(slog.Attr{
			Key:   a.Key,
			Value: h.maskAttributeValue(a.Value),
		})
		return true
	})

	return h.handler.Handle(ctx, r)
}

// WithAttrs реализует интерфейс slog.Handler
func (h *TokenMaskerHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	maskedAttrs := make([]slog.Attr, len(attrs))
	for i, attr := range attrs {
		maskedAttrs[i] = slog.Attr{
			Key:   attr.Key,
			Value: h.maskAttributeValue(attr.Value),
		}
	}
	return &TokenMaskerHandler{
		handler: h.handler.WithAttrs(maskedAttrs),
		secrets: h.secrets,
	}
}

// WithGroup реализует интерфейс slog.Handler
func (h *TokenMaskerHandler) WithGroup(name string) slog.Handler {
	return &TokenMaskerHandler{
		handler: h.handler.WithGroup(name),
		secrets: h.secrets,
	}
}

// maskAttributeValue рекурсивно маскирует значения атрибутов
func (h *TokenMaskerHandler) maskAttributeValue(value slog.Value) slog.Value {
	switch value.Kind() {
	case slog.KindString:
		return slog.StringValue(h.maskTokens(value.String()))
	case slog.KindAny:
		// Ошибки приводятся к строке: текст ошибки discordgo может содержать токен.
		if err, ok := value.Any().(error); ok {
			return slog.StringValue(h.maskTokens(err.Error()))
		}
		return value
	case slog.KindGroup:
		group := value.Group()
		maskedGroup := make([]slog.Attr, len(group))
		for i, attr := range group {
			maskedGroup[i] = slog.Attr{
				Key:   attr.Key,
				Value: h.maskAttributeValue(attr.Value),
			}
		}
		return slog.GroupValue(maskedGroup...)
	default:
		// Для других типов возвращаем оригинальное значение
		return value
	}
}

// NewMaskedLogger создает новый экземпляр slog.Logger с маскировкой токенов
func NewMaskedLogger(handler slog.Handler, secrets ...string) *slog.Logger {
	return slog.New(NewTokenMaskerHandler(handler, secrets...))
}
