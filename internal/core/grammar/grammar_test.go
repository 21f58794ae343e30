package grammar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"discord-speakable/internal/domain"
	"discord-speakable/internal/markdown"
)

var inline = markdown.State{Inline: true}

func TestMatchCommand(t *testing.T) {
	tests := []struct {
		name   string
		source string
		want   string
		id     string
	}{
		{"одно слово", "</ban:123456789012345678>", "ban", "123456789012345678"},
		{"два слова с дефисом", "</ban-user mod:123456789012345678> rest", "ban-user mod", "123456789012345678"},
		{"три слова", "</a b c:12345678901234567>", "a b c", "12345678901234567"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := MatchCommand(tt.source, inline)
			require.NotNil(t, c)
			assert.Equal(t, tt.want, c.Group(1))
			assert.Equal(t, tt.id, c.Group(2))
		})
	}

	t.Run("четыре слова не распознаются", func(t *testing.T) {
		assert.Nil(t, MatchCommand("</a b c d:123456789012345678>", inline))
	})

	t.Run("короткий идентификатор не распознается", func(t *testing.T) {
		assert.Nil(t, MatchCommand("</ban:1234>", inline))
	})
}

func TestMatchChannelOrMessageLink(t *testing.T) {
	t.Run("ссылка на сообщение", func(t *testing.T) {
		c := MatchChannelOrMessageLink("https://discord.com/channels/1/2/3", inline)
		require.NotNil(t, c)
		assert.Equal(t, []string{"1", "2", "3"}, []string{c.Group(1), c.Group(2), c.Group(3)})
	})

	t.Run("ссылка на канал в личных сообщениях", func(t *testing.T) {
		c := MatchChannelOrMessageLink("https://canary.discord.com/channels/@me/2", inline)
		require.NotNil(t, c)
		assert.Equal(t, "@me", c.Group(1))
		assert.Equal(t, "2", c.Group(2))
		assert.Equal(t, "", c.Group(3))
	})

	t.Run("корень сервера без канала", func(t *testing.T) {
		c := MatchChannelOrMessageLink("https://discordapp.com/channels/1", inline)
		require.NotNil(t, c)
		assert.Equal(t, "", c.Group(2))
	})

	t.Run("именованный маршрут отклоняется", func(t *testing.T) {
		assert.Nil(t, MatchChannelOrMessageLink("https://discord.com/channels/1/channel-browser", inline))
		assert.Nil(t, MatchChannelOrMessageLink("https://discord.com/channels/1/2/threads/3/4", inline))
	})

	t.Run("чужой хост не распознается", func(t *testing.T) {
		assert.Nil(t, MatchChannelOrMessageLink("https://example.com/channels/1/2", inline))
	})
}

func TestMatchAttachmentLink(t *testing.T) {
	c := MatchAttachmentLink("https://cdn.discordapp.com/attachments/111/222/report.final.pdf?ex=abc&is=def", inline)

	require.NotNil(t, c)
	assert.Equal(t, "report.final.pdf", c.Group(1))
	assert.Equal(t, "https://cdn.discordapp.com/attachments/111/222/report.final.pdf?ex=abc&is=def", c[0])

	c = MatchAttachmentLink("https://media.discordapp.net/ephemeral-attachments/1/2/image-.png", inline)
	require.NotNil(t, c)
	assert.Equal(t, "image-.png", c.Group(1))
}

func TestMatchMediaPostLink(t *testing.T) {
	c := MatchMediaPostLink("https://ptb.discord.com/channels/1/2/threads/3/4", inline)

	require.NotNil(t, c)
	assert.Equal(t, []string{"1", "2", "3", "4"}, []string{c.Group(1), c.Group(2), c.Group(3), c.Group(4)})
}

func TestNewMessageParser(t *testing.T) {
	parse := NewMessageParser()

	tests := []struct {
		name   string
		source string
		want   []domain.Node
	}{
		{
			name:   "ссылка на сообщение раньше общего url",
			source: "https://discord.com/channels/1/2/3",
			want:   []domain.Node{domain.ChannelOrMessageLink{GuildIDOrMe: "1", ChannelID: "2", MessageID: "3"}},
		},
		{
			name:   "медиа-пост после отклоненной ссылки на канал",
			source: "https://discord.com/channels/1/2/threads/3/4",
			want:   []domain.Node{domain.MediaPostLink{GuildID: "1", ChannelID: "2", ThreadID: "3", MessageID: "4"}},
		},
		{
			name:   "вложение",
			source: "file: https://cdn.discordapp.com/attachments/111/222/report.final.pdf?ex=abc",
			want:   []domain.Node{domain.Text{Content: "file: "}, domain.AttachmentLink{Filename: "report.final.pdf"}},
		},
		{
			name:   "именованный маршрут становится обычным url",
			source: "https://discord.com/channels/1/channel-browser",
			want:   []domain.Node{domain.URL{Target: "https://discord.com/channels/1/channel-browser"}},
		},
		{
			name:   "команда внутри текста",
			source: "use </ban-user mod:123456789012345678>!",
			want:   []domain.Node{domain.Text{Content: "use "}, domain.Command{Name: "ban-user mod", ID: "123456789012345678"}, domain.Text{Content: "!"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parse(tt.source))
		})
	}
}

func TestNewNameParser(t *testing.T) {
	parse := NewNameParser()

	t.Run("распознает только эмодзи и текст", func(t *testing.T) {
		nodes := parse("🎉**general** :tada: <@123456789012345678>")

		for _, n := range nodes {
			assert.Contains(t, []domain.NodeType{domain.NodeText, domain.NodeTwemoji}, n.Type())
		}
		assert.Equal(t, []domain.Node{
			domain.Twemoji{Name: "🎉"},
			domain.Text{Content: "**general** :tada: <@123456789012345678>"},
		}, nodes)
	})
}
