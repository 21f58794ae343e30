package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"discord-speakable/internal/domain"
)

const (
	guildID   = "111111111111111111"
	userID    = "222222222222222222"
	channelID = "333333333333333333"
	roleID    = "444444444444444444"
	emojiChID = "555555555555555555"
	missingID = "999999999999999999"
)

func newTestGuild() *MockGuild {
	return &MockGuild{
		GuildID:  guildID,
		Members:  map[string]string{userID: "⭐Alice"},
		Channels: map[string]string{channelID: "general", emojiChID: "🎉お知らせ"},
		Roles:    map[string]string{roleID: "Moderator"},
	}
}

func newTestService() *SpeechService {
	now := time.Unix(1705277130, 0) // 2024-01-15 09:05:30 JST
	return NewSpeechService(WithClock(func() time.Time { return now }))
}

func TestSpeechService_Speak(t *testing.T) {
	s := newTestService()
	guild := newTestGuild()

	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"обычный текст не меняется", "こんにちは、世界! ok?", "こんにちは、世界! ok?"},
		{"форматирование отбрасывается", "**жирный** _курсив_ __подчеркнутый__ ~~зачеркнутый~~", "жирный курсив подчеркнутый зачеркнутый"},
		{"спойлер", "ответ: ||42||", "ответ:  伏字 "},
		{"голая ссылка", "см. https://example.com", "см.  URL省略 "},
		{"автоссылка", "<https://example.com>", " URL省略 "},
		{"маскированная ссылка читается по тексту", "[документация](https://example.com)", "документация"},
		{"код в строке читается", "`go test`", "go test"},
		{"блок кода с языком", "```go\nfmt.Println()\n```", " goのコード "},
		{"блок кода без языка", "```\nx\n```", " コード "},
		{"перевод строки", "a\nb", "a\nb"},
		{"экранирование", `\*x\*`, "*x*"},
		{"цитата", "> цитата", "цитата"},
		{"известный участник с эмодзи в имени", "<@" + userID + ">", "⭐Alice"},
		{"неизвестный участник", "<@" + missingID + ">", " 不明なユーザー "},
		{"известный канал", "<#" + channelID + ">", "general"},
		{"имя канала с эмодзи", "<#" + emojiChID + ">", "🎉お知らせ"},
		{"неизвестный канал", "<#" + missingID + ">", " 不明なチャンネル "},
		{"известная роль", "<@&" + roleID + ">", "Moderator"},
		{"неизвестная роль", "<@&" + missingID + ">", " 不明なロール "},
		{"пользовательский эмодзи", "<:pepe:123456789012345678>", "pepe"},
		{"стандартный эмодзи", "👍🏽 ok", "👍🏽 ok"},
		{"короткий код эмодзи не меняется", ":thumbsup::skin-tone-2:", ":thumbsup::skin-tone-2:"},
		{"слова через двоеточие", "key:value:other", "key:value:other"},
		{"двоеточие после слова", "see log:error: failed", "see log:error: failed"},
		{"отношение", "ratio a:b:c", "ratio a:b:c"},
		{"квалифицированное имя", "std::vector::push_back", "std::vector::push_back"},
		{"время", "10:30:45", "10:30:45"},
		{"команда", "</ban-user mod:123456789012345678>", " ban-user modコマンド "},
		{"everyone и here", "@everyone @here", " @エブリワン   @ヒア "},
		{"вложение", "https://cdn.discordapp.com/attachments/111/222/report.final.pdf?ex=abc", "report.final.pdf"},
		{"медиа-пост", "https://discord.com/channels/1/2/threads/3/4", " メディアポスト "},
		{"ссылка без канала", "https://discord.com/channels/" + guildID, " URL省略 "},
		{"ссылка на сообщение другого сервера", "https://discord.com/channels/777/" + channelID + "/1", " 外部サーバーのメッセージ "},
		{"ссылка на канал другого сервера", "https://discord.com/channels/777/" + channelID, " 外部サーバーのチャンネル "},
		{"ссылка на личные сообщения", "https://discord.com/channels/@me/" + channelID, " 外部サーバーのチャンネル "},
		{"ссылка на неизвестное сообщение", "https://discord.com/channels/" + guildID + "/" + missingID + "/1", " 不明なメッセージ "},
		{"ссылка на неизвестный канал", "https://discord.com/channels/" + guildID + "/" + missingID, " 不明なチャンネル "},
		{"ссылка на сообщение канала", "https://discord.com/channels/" + guildID + "/" + channelID + "/1", "generalのメッセージ"},
		{"ссылка на канал", "https://discord.com/channels/" + guildID + "/" + emojiChID, "🎉お知らせ"},
		{"метка времени совпадает с текущей", "<t:1705277130:R>", "今"},
		{"метка времени отличается минутой", "<t:1705277250>", "7分30秒"},
		{"метка времени в прошлом году", "<t:1704034799:F>", "2023年12月31日日曜日 23時59分59秒"},
		{"метка времени вне диапазона", "<t:99999999999999999>", " 不明な日付 "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Speak(tt.content, guild))
		})
	}
}

func TestSpeechService_NilGuild(t *testing.T) {
	s := newTestService()

	tests := []struct {
		content string
		want    string
	}{
		{"<@" + userID + ">", " 不明なユーザー "},
		{"<#" + channelID + ">", " 不明なチャンネル "},
		{"<@&" + roleID + ">", " 不明なロール "},
		{"https://discord.com/channels/" + guildID + "/" + channelID + "/1", " 外部サーバーのメッセージ "},
		{"https://discord.com/channels/" + guildID, " URL省略 "},
	}

	for _, tt := range tests {
		t.Run(tt.content, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Speak(tt.content, nil))
		})
	}
}

func TestSpeechService_Render(t *testing.T) {
	s := newTestService()

	t.Run("nil узлы и пустое содержимое дают пустую строку", func(t *testing.T) {
		nodes := []domain.Node{
			nil,
			domain.Strong{Content: nil},
			domain.Text{Content: "x"},
			domain.Timestamp{Timestamp: ""},
			domain.AttachmentLink{},
		}

		assert.Equal(t, "x 不明な日付 ", s.Render(nodes, nil))
	})

	t.Run("пустой вход", func(t *testing.T) {
		assert.Equal(t, "", s.Speak("", nil))
	})

	t.Run("рендер детерминирован", func(t *testing.T) {
		content := "**hi** <@" + userID + "> <t:1705277250> https://discord.com/channels/" + guildID + "/" + channelID
		guild := newTestGuild()

		first := s.Speak(content, guild)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, s.Speak(content, guild))
		}
	})

	t.Run("глубокая вложенность не приводит к сбою", func(t *testing.T) {
		var node domain.Node = domain.Text{Content: "deep"}
		for i := 0; i < 1000; i++ {
			node = domain.Em{Content: []domain.Node{node}}
		}

		assert.NotPanics(t, func() { s.Render([]domain.Node{node}, nil) })
	})
}

func TestSpeechService_Options(t *testing.T) {
	t.Run("WithPhrases переопределяет фразы", func(t *testing.T) {
		s := NewSpeechService(WithPhrases(domain.Phrases{Spoiler: "[hidden]", Command: "%s command"}))

		assert.Equal(t, "[hidden]", s.Speak("||x||", nil))
		assert.Equal(t, "ban command", s.Speak("</ban:123456789012345678>", nil))
		assert.Equal(t, " URL省略 ", s.Speak("https://example.com", nil))
	})

	t.Run("WithDateFormatter меняет часовой пояс", func(t *testing.T) {
		now := time.Unix(1705277130, 0)
		s := NewSpeechService(
			WithDateFormatter(NewDateFormatter(time.UTC)),
			WithClock(func() time.Time { return now }),
		)

		assert.Equal(t, "7分30秒", s.Speak("<t:1705277250>", nil))
		assert.Equal(t, "今", s.Speak("<t:1705277130>", nil))
	})
}
