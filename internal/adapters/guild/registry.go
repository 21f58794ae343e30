package guild

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"discord-speakable/internal/ports"
)

// ErrUnknownGuild возвращается, когда снимок сервера не зарегистрирован.
var ErrUnknownGuild = errors.New("unknown guild")

// Registry хранит снимки серверов и выдает их по идентификатору.
type Registry struct {
	snapshots map[string]*Snapshot
	mutex     sync.RWMutex
	log       *slog.Logger
}

var _ ports.GuildProvider = (*Registry)(nil)

// NewRegistry создает пустой реестр снимков.
func NewRegistry(log *slog.Logger) *Registry {
	if log == nil {
		log = slog.Default()
	}
	return &Registry{
		snapshots: make(map[string]*Snapshot),
		log:       log,
	}
}

// Register добавляет снимок, заменяя ранее зарегистрированный с тем же ID.
func (r *Registry) Register(s *Snapshot) {
	if s == nil {
		return
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.snapshots[s.ID()] = s
}

// Load читает снимок из источника, разбирает его и регистрирует.
func (r *Registry) Load(parser ports.SnapshotParser, source ports.DataSource) (*Snapshot, error) {
	data, err := source.Fetch()
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild snapshot: %w", err)
	}

	g, err := parser.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse guild snapshot: %w", err)
	}

	s := NewSnapshot(g)
	r.Register(s)

	members, channels, roles := s.Stats()
	r.log.Info("Guild snapshot loaded", "guild_id", s.ID(), "name", s.Name(),
		"members", members, "channels", channels, "roles", roles)

	return s, nil
}

// Snapshot возвращает снимок сервера или ErrUnknownGuild.
func (r *Registry) Snapshot(guildID string) (*Snapshot, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	s, ok := r.snapshots[guildID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGuild, guildID)
	}
	return s, nil
}

// Guild реализует ports.GuildProvider.
func (r *Registry) Guild(guildID string) (ports.Guild, bool) {
	s, err := r.Snapshot(guildID)
	if err != nil {
		return nil, false
	}
	return s, true
}
