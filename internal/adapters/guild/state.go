package guild

import (
	"github.com/bwmarrin/discordgo"

	"discord-speakable/internal/ports"
)

// StateGuild разрешает упоминания по кэшу состояния сессии discordgo.
// Канал, принадлежащий другому серверу, считается не найденным.
type StateGuild struct {
	state   *discordgo.State
	guildID string
}

var _ ports.Guild = (*StateGuild)(nil)

// NewStateGuild создает контекст разрешения для сервера guildID.
func NewStateGuild(state *discordgo.State, guildID string) *StateGuild {
	return &StateGuild{state: state, guildID: guildID}
}

// ID возвращает идентификатор сервера.
func (g *StateGuild) ID() string {
	if g == nil {
		return ""
	}
	return g.guildID
}

// MemberDisplayName возвращает отображаемое имя участника сервера.
func (g *StateGuild) MemberDisplayName(userID string) (string, bool) {
	if g == nil || g.state == nil {
		return "", false
	}
	m, err := g.state.Member(g.guildID, userID)
	if err != nil {
		return "", false
	}
	return DisplayName(m)
}

// ChannelName возвращает название канала или ветки этого сервера.
func (g *StateGuild) ChannelName(channelID string) (string, bool) {
	if g == nil || g.state == nil {
		return "", false
	}
	c, err := g.state.Channel(channelID)
	if err != nil || c.GuildID != g.guildID {
		return "", false
	}
	return c.Name, true
}

// RoleName возвращает название роли сервера.
func (g *StateGuild) RoleName(roleID string) (string, bool) {
	if g == nil || g.state == nil {
		return "", false
	}
	r, err := g.state.Role(g.guildID, roleID)
	if err != nil {
		return "", false
	}
	return r.Name, true
}
