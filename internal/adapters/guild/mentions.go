package guild

import (
	"github.com/bwmarrin/discordgo"

	"discord-speakable/internal/ports"
)

// mentionGuild дополняет контекст пользователями, упомянутыми в сообщении:
// Discord присылает их вместе с сообщением, даже если их нет в кэше участников.
type mentionGuild struct {
	ports.Guild
	users map[string]string
}

// WithMentions оборачивает g так, что участники, не найденные в g, ищутся
// среди упомянутых пользователей. nil g остается nil.
func WithMentions(g ports.Guild, mentions []*discordgo.User) ports.Guild {
	if g == nil || len(mentions) == 0 {
		return g
	}
	users := make(map[string]string, len(mentions))
	for _, u := range mentions {
		if name, ok := UserDisplayName(u); ok {
			users[u.ID] = name
		}
	}
	return &mentionGuild{Guild: g, users: users}
}

func (g *mentionGuild) MemberDisplayName(userID string) (string, bool) {
	if name, ok := g.Guild.MemberDisplayName(userID); ok {
		return name, true
	}
	name, ok := g.users[userID]
	return name, ok
}
