package parser

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"discord-speakable/internal/ports"
)

// ErrMissingGuildID возвращается для снимка без идентификатора сервера.
var ErrMissingGuildID = errors.New("guild snapshot has no id")

// JsonParser разбирает JSON-снимок сервера в формате объекта Guild API Discord.
type JsonParser struct{}

// NewJsonParser создает новый экземпляр JsonParser.
func NewJsonParser() ports.SnapshotParser {
	return &JsonParser{}
}

// Parse преобразует срез байт с JSON в структуру discordgo.Guild.
func (p *JsonParser) Parse(data []byte) (*discordgo.Guild, error) {
	var guild discordgo.Guild
	if err := json.Unmarshal(data, &guild); err != nil {
		return nil, fmt.Errorf("failed to unmarshal json: %w", err)
	}
	if guild.ID == "" {
		return nil, ErrMissingGuildID
	}

	// В снимке каналы часто записаны без guild_id: они принадлежат этому серверу.
	for _, list := range [][]*discordgo.Channel{guild.Channels, guild.Threads} {
		for _, c := range list {
			if c != nil && c.GuildID == "" {
				c.GuildID = guild.ID
			}
		}
	}

	return &guild, nil
}
