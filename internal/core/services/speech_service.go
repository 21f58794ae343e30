package services

import (
	"log/slog"
	"strconv"
	"strings"
	"time"

	"discord-speakable/internal/core/grammar"
	"discord-speakable/internal/domain"
	"discord-speakable/internal/markdown"
	"discord-speakable/internal/ports"
)

// maxTimestampSeconds — предел представимых дат: ±8.64e15 мс от эпохи.
const maxTimestampSeconds = 8_640_000_000_000

// maxRenderDepth ограничивает рекурсию рендера, включая повторный разбор имен.
const maxRenderDepth = markdown.MaxDepth + 4

// Option — функциональная опция для настройки SpeechService.
type Option func(*SpeechService)

// WithLogger устанавливает логгер для сервиса.
func WithLogger(l *slog.Logger) Option {
	return func(s *SpeechService) {
		if l != nil {
			s.log = l
		}
	}
}

// WithClock подменяет источник текущего времени.
func WithClock(now func() time.Time) Option {
	return func(s *SpeechService) {
		if now != nil {
			s.now = now
		}
	}
}

// WithPhrases устанавливает фразы-заменители.
func WithPhrases(p domain.Phrases) Option {
	return func(s *SpeechService) {
		s.phrases = domain.DefaultPhrases().Merge(p)
	}
}

// WithDateFormatter устанавливает форматтер меток времени.
func WithDateFormatter(f *DateFormatter) Option {
	return func(s *SpeechService) {
		if f != nil {
			s.dates = f
		}
	}
}

// SpeechService превращает разметку Discord в текст для синтеза речи.
// Сервис не хранит состояние между вызовами и безопасен для одновременного использования.
type SpeechService struct {
	parse     markdown.Parser
	parseName markdown.Parser
	dates     *DateFormatter
	phrases   domain.Phrases
	now       func() time.Time
	log       *slog.Logger
}

var _ ports.SpeechRenderer = (*SpeechService)(nil)

// NewSpeechService создает SpeechService с конфигурацией по умолчанию,
// которую можно переопределить опциями.
func NewSpeechService(opts ...Option) *SpeechService {
	s := &SpeechService{
		parse:     grammar.NewMessageParser(),
		parseName: grammar.NewNameParser(),
		dates:     NewDateFormatter(nil),
		phrases:   domain.DefaultPhrases(),
		now:       time.Now,
		log:       slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Speak разбирает содержимое сообщения и возвращает текст для озвучивания.
// Никогда не завершается ошибкой: все сбои заменяются фразами-заменителями.
func (s *SpeechService) Speak(content string, guild ports.Guild) string {
	nodes := s.parse(content)
	text := s.Render(nodes, guild)
	s.log.Debug("Rendered speakable text", "nodes", len(nodes), "input_length", len(content), "output_length", len(text))
	return text
}

// Render превращает последовательность узлов в текст.
func (s *SpeechService) Render(nodes []domain.Node, guild ports.Guild) string {
	return s.render(nodes, guild, 0)
}

func (s *SpeechService) render(nodes []domain.Node, guild ports.Guild, depth int) string {
	if depth > maxRenderDepth {
		return ""
	}
	var sb strings.Builder
	for _, n := range nodes {
		sb.WriteString(s.renderNode(n, guild, depth))
	}
	return sb.String()
}

func (s *SpeechService) renderNode(node domain.Node, guild ports.Guild, depth int) string {
	switch n := node.(type) {
	case domain.Link:
		return s.render(n.Content, guild, depth+1)
	case domain.BlockQuote:
		return s.render(n.Content, guild, depth+1)
	case domain.Em:
		return s.render(n.Content, guild, depth+1)
	case domain.Strong:
		return s.render(n.Content, guild, depth+1)
	case domain.Underline:
		return s.render(n.Content, guild, depth+1)
	case domain.Strikethrough:
		return s.render(n.Content, guild, depth+1)

	case domain.Text:
		return n.Content
	case domain.Escape:
		return n.Content
	case domain.InlineCode:
		return n.Content

	case domain.URL, domain.Autolink:
		return s.phrases.URLOmitted
	case domain.Spoiler:
		return s.phrases.Spoiler
	case domain.Newline, domain.Br:
		return "\n"
	case domain.CodeBlock:
		if n.Lang != "" {
			return domain.Fill(s.phrases.LangCode, n.Lang)
		}
		return s.phrases.Code

	case domain.User:
		if guild != nil {
			if name, ok := guild.MemberDisplayName(n.ID); ok {
				return s.cleanName(name, depth)
			}
		}
		return s.phrases.UnknownUser
	case domain.Channel:
		if guild != nil {
			if name, ok := guild.ChannelName(n.ID); ok {
				return s.cleanName(name, depth)
			}
		}
		return s.phrases.UnknownChannel
	case domain.Role:
		if guild != nil {
			if name, ok := guild.RoleName(n.ID); ok {
				return s.cleanName(name, depth)
			}
		}
		return s.phrases.UnknownRole

	// Пользовательские эмодзи читаются по имени как есть.
	case domain.Emoji:
		return n.Name
	case domain.Twemoji:
		return n.Name
	case domain.Command:
		return domain.Fill(s.phrases.Command, n.Name)
	case domain.Everyone:
		return s.phrases.Everyone
	case domain.Here:
		return s.phrases.Here
	case domain.Timestamp:
		return s.renderTimestamp(n.Timestamp)

	case domain.AttachmentLink:
		return n.Filename
	case domain.MediaPostLink:
		return s.phrases.MediaPost
	case domain.ChannelOrMessageLink:
		return s.renderChannelOrMessageLink(n, guild, depth)
	}

	return ""
}

// renderTimestamp читает только те сегменты даты, которые отличаются от текущего момента.
func (s *SpeechService) renderTimestamp(raw string) string {
	seconds, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || seconds > maxTimestampSeconds || seconds < -maxTimestampSeconds {
		return s.phrases.UnknownDate
	}

	full := s.dates.Segments(time.UnixMilli(seconds * 1000))
	now := s.dates.Segments(s.now())
	for i := range full {
		if i >= len(now) || full[i] != now[i] {
			return strings.Join(full[i:], "")
		}
	}

	return s.phrases.Now
}

func (s *SpeechService) renderChannelOrMessageLink(link domain.ChannelOrMessageLink, guild ports.Guild, depth int) string {
	if link.ChannelID == "" {
		return s.phrases.URLOmitted
	}

	isMessage := link.MessageID != ""
	if guild == nil || guild.ID() != link.GuildIDOrMe {
		if isMessage {
			return s.phrases.ExternalMessage
		}
		return s.phrases.ExternalChannel
	}

	name, ok := guild.ChannelName(link.ChannelID)
	if !ok {
		if isMessage {
			return s.phrases.UnknownMessage
		}
		return s.phrases.UnknownLink
	}

	name = s.cleanName(name, depth)
	if isMessage {
		return domain.Fill(s.phrases.MessageOf, name)
	}
	return name
}

// cleanName убирает разметку эмодзи из отображаемого имени. Имя разбирается
// грамматикой только из эмодзи и текста и рендерится без контекста сервера.
func (s *SpeechService) cleanName(name string, depth int) string {
	return s.render(s.parseName(name), nil, depth+1)
}
