package grammar

import (
	"strings"

	"discord-speakable/internal/domain"
	"discord-speakable/internal/markdown"
)

// Хосты клиента Discord, на которых живут ссылки на каналы и сообщения.
const discordHost = `https:\/\/(?:(?:canary\.|ptb\.)?discord(?:app)?\.com|staging\.discord\.co)`

var (
	commandMatch = markdown.InlineRegex(`^<\/([\w-]+(?: [\w-]+)?(?: [\w-]+)?):([0-9]{17,20})>`)

	channelOrMessageMatch = markdown.InlineRegex(`^` + discordHost + `\/channels\/([0-9]+|@me)(?:\/([0-9]+|[a-zA-Z-]+))?(?:\/([0-9]+|[a-zA-Z-]+))?`)

	attachmentMatch = markdown.InlineRegex(`^https:\/\/(?:(?:media|images)\.discordapp\.net|cdn\.discordapp\.com)\/(?:attachments|ephemeral-attachments)\/[0-9]+\/[0-9]+\/([\w.-]*[\w-])(?:\?[\w?&=-]*)?`)

	mediaPostMatch = markdown.InlineRegex(`^` + discordHost + `\/channels\/([0-9]+)\/([0-9]+)\/threads\/([0-9]+)\/([0-9]+)`)
)

// MatchCommand распознает ссылку на слэш-команду: `</name:id>`, где name — от
// одного до трех слов, разделенных пробелом.
func MatchCommand(source string, state markdown.State) markdown.Capture {
	return commandMatch(source, state)
}

// MatchChannelOrMessageLink распознает ссылку на канал или сообщение.
// Захваты канала и сообщения с нецифровыми символами отклоняются, чтобы
// именованные маршруты клиента (например, .../threads/...) не считались ссылкой.
func MatchChannelOrMessageLink(source string, state markdown.State) markdown.Capture {
	c := channelOrMessageMatch(source, state)
	if c == nil {
		return nil
	}
	if !isDigits(c.Group(2)) || !isDigits(c.Group(3)) {
		return nil
	}
	return c
}

// MatchAttachmentLink распознает ссылку на вложение в CDN; строка запроса отбрасывается.
func MatchAttachmentLink(source string, state markdown.State) markdown.Capture {
	return attachmentMatch(source, state)
}

// MatchMediaPostLink распознает ссылку на сообщение в ветке медиа-канала.
func MatchMediaPostLink(source string, state markdown.State) markdown.Capture {
	return mediaPostMatch(source, state)
}

func isDigits(s string) bool {
	return strings.Trim(s, "0123456789") == ""
}

func parseCommand(c markdown.Capture, _ markdown.NestedParse, _ markdown.State) domain.Node {
	return domain.Command{Name: c.Group(1), ID: c.Group(2)}
}

func parseChannelOrMessageLink(c markdown.Capture, _ markdown.NestedParse, _ markdown.State) domain.Node {
	return domain.ChannelOrMessageLink{
		GuildIDOrMe: c.Group(1),
		ChannelID:   c.Group(2),
		MessageID:   c.Group(3),
	}
}

func parseAttachmentLink(c markdown.Capture, _ markdown.NestedParse, _ markdown.State) domain.Node {
	return domain.AttachmentLink{Filename: c.Group(1)}
}

func parseMediaPostLink(c markdown.Capture, _ markdown.NestedParse, _ markdown.State) domain.Node {
	return domain.MediaPostLink{
		GuildID:   c.Group(1),
		ChannelID: c.Group(2),
		ThreadID:  c.Group(3),
		MessageID: c.Group(4),
	}
}
