package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bwmarrin/discordgo"

	"discord-speakable/internal/adapters/guild"
	"discord-speakable/internal/domain"
	"discord-speakable/internal/ports"
)

// Intents — события шлюза, нужные для озвучивания: сообщения с содержимым,
// а также каналы, роли и участники серверов для разрешения упоминаний.
const Intents = discordgo.IntentGuilds |
	discordgo.IntentGuildMembers |
	discordgo.IntentGuildMessages |
	discordgo.IntentMessageContent

// Option — функциональная опция для настройки Bot.
type Option func(*Bot)

// WithLogger устанавливает логгер для бота.
func WithLogger(l *slog.Logger) Option {
	return func(b *Bot) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithIgnoreBots включает пропуск сообщений от ботов.
func WithIgnoreBots(ignore bool) Option {
	return func(b *Bot) {
		b.ignoreBots = ignore
	}
}

// WithChannels ограничивает озвучивание перечисленными каналами.
// Пустой список означает все каналы.
func WithChannels(channelIDs []string) Option {
	return func(b *Bot) {
		if len(channelIDs) == 0 {
			b.channels = nil
			return
		}
		b.channels = make(map[string]struct{}, len(channelIDs))
		for _, id := range channelIDs {
			b.channels[id] = struct{}{}
		}
	}
}

// WithSessionLogLevel устанавливает уровень внутреннего логирования discordgo.
func WithSessionLogLevel(level int) Option {
	return func(b *Bot) {
		if b.session != nil {
			b.session.LogLevel = level
		}
	}
}

// Bot озвучивает сообщения Discord: каждое новое сообщение рендерится
// в текст и передается экспортеру.
type Bot struct {
	session    *discordgo.Session
	renderer   ports.SpeechRenderer
	exporter   ports.Exporter
	ignoreBots bool
	channels   map[string]struct{}
	logger     *slog.Logger
}

// NewBot создает бота с сессией discordgo для токена token.
func NewBot(token string, renderer ports.SpeechRenderer, exporter ports.Exporter, opts ...Option) (*Bot, error) {
	if strings.TrimSpace(token) == "" {
		return nil, errors.New("bot token is empty")
	}
	if renderer == nil || exporter == nil {
		return nil, errors.New("renderer and exporter are required")
	}

	session, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("failed to create discord session: %w", err)
	}
	session.Identify.Intents = Intents
	session.StateEnabled = true
	session.State.TrackMembers = true
	session.State.TrackRoles = true
	session.State.TrackChannels = true
	session.State.TrackThreads = true

	b := &Bot{
		session:    session,
		renderer:   renderer,
		exporter:   exporter,
		ignoreBots: true,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}

	return b, nil
}

// Start открывает соединение со шлюзом и обрабатывает события до отмены ctx.
func (b *Bot) Start(ctx context.Context) error {
	removeReady := b.session.AddHandler(b.onReady)
	removeMessage := b.session.AddHandler(b.onMessageCreate)
	defer removeReady()
	defer removeMessage()

	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open discord session: %w", err)
	}

	<-ctx.Done()
	b.logger.Info("Context cancelled, stopping bot...")

	if err := b.session.Close(); err != nil {
		return fmt.Errorf("failed to close discord session: %w", err)
	}
	return nil
}

func (b *Bot) onReady(_ *discordgo.Session, r *discordgo.Ready) {
	b.logger.Info("Connected to gateway", slog.String("username", r.User.Username), slog.Int("guilds", len(r.Guilds)))
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	u, ok := b.handleMessage(s.State, m.Message)
	if !ok {
		return
	}
	if err := b.exporter.Export(u); err != nil {
		b.logger.Error("failed to export utterance", slog.String("message_id", u.MessageID), slog.String("error", err.Error()))
	}
}

// handleMessage превращает сообщение в реплику. Возвращает false, если
// сообщение не нужно озвучивать.
func (b *Bot) handleMessage(state *discordgo.State, msg *discordgo.Message) (domain.Utterance, bool) {
	if msg == nil || msg.Author == nil {
		return domain.Utterance{}, false
	}
	logger := b.logger.With(slog.String("channel_id", msg.ChannelID), slog.String("message_id", msg.ID))

	if b.ignoreBots && msg.Author.Bot {
		logger.Debug("skipping bot message")
		return domain.Utterance{}, false
	}
	if b.channels != nil {
		if _, ok := b.channels[msg.ChannelID]; !ok {
			logger.Debug("skipping message outside allowed channels")
			return domain.Utterance{}, false
		}
	}
	if strings.TrimSpace(msg.Content) == "" {
		return domain.Utterance{}, false
	}

	// Личные сообщения рендерятся без контекста сервера.
	var g ports.Guild
	if msg.GuildID != "" {
		g = guild.WithMentions(guild.NewStateGuild(state, msg.GuildID), msg.Mentions)
	}

	text := b.renderer.Speak(msg.Content, g)
	if strings.TrimSpace(text) == "" {
		logger.Debug("rendered text is empty")
		return domain.Utterance{}, false
	}

	return domain.Utterance{
		GuildID:   msg.GuildID,
		ChannelID: msg.ChannelID,
		MessageID: msg.ID,
		Author:    b.authorName(state, msg),
		Text:      text,
	}, true
}

// authorName определяет имя автора так же, как имена в упоминаниях:
// ник на сервере, глобальное имя, имя пользователя.
func (b *Bot) authorName(state *discordgo.State, msg *discordgo.Message) string {
	if msg.Member != nil {
		member := *msg.Member
		member.User = msg.Author
		if name, ok := guild.DisplayName(&member); ok {
			return name
		}
	}
	if msg.GuildID != "" {
		if name, ok := guild.NewStateGuild(state, msg.GuildID).MemberDisplayName(msg.Author.ID); ok {
			return name
		}
	}
	name, _ := guild.UserDisplayName(msg.Author)
	return name
}
