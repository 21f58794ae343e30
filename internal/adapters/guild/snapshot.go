package guild

import (
	"github.com/bwmarrin/discordgo"

	"discord-speakable/internal/ports"
)

// Snapshot — неизменяемый индекс статического снимка сервера.
type Snapshot struct {
	id       string
	name     string
	members  map[string]string
	channels map[string]string
	roles    map[string]string
}

var _ ports.Guild = (*Snapshot)(nil)

// NewSnapshot индексирует участников, каналы, ветки и роли сервера.
func NewSnapshot(g *discordgo.Guild) *Snapshot {
	s := &Snapshot{
		members:  make(map[string]string),
		channels: make(map[string]string),
		roles:    make(map[string]string),
	}
	if g == nil {
		return s
	}

	s.id, s.name = g.ID, g.Name
	for _, m := range g.Members {
		if m == nil || m.User == nil {
			continue
		}
		if name, ok := DisplayName(m); ok {
			s.members[m.User.ID] = name
		}
	}
	for _, list := range [][]*discordgo.Channel{g.Channels, g.Threads} {
		for _, c := range list {
			// Каналы с явным чужим сервером в индекс не попадают.
			if c == nil || (c.GuildID != "" && c.GuildID != g.ID) {
				continue
			}
			s.channels[c.ID] = c.Name
		}
	}
	for _, r := range g.Roles {
		if r != nil {
			s.roles[r.ID] = r.Name
		}
	}

	return s
}

// ID возвращает идентификатор сервера.
func (s *Snapshot) ID() string {
	if s == nil {
		return ""
	}
	return s.id
}

// Name возвращает название сервера.
func (s *Snapshot) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

func (s *Snapshot) MemberDisplayName(userID string) (string, bool) {
	if s == nil {
		return "", false
	}
	name, ok := s.members[userID]
	return name, ok
}

func (s *Snapshot) ChannelName(channelID string) (string, bool) {
	if s == nil {
		return "", false
	}
	name, ok := s.channels[channelID]
	return name, ok
}

func (s *Snapshot) RoleName(roleID string) (string, bool) {
	if s == nil {
		return "", false
	}
	name, ok := s.roles[roleID]
	return name, ok
}

// Stats возвращает число участников, каналов и ролей в снимке.
func (s *Snapshot) Stats() (members, channels, roles int) {
	if s == nil {
		return 0, 0, 0
	}
	return len(s.members), len(s.channels), len(s.roles)
}
