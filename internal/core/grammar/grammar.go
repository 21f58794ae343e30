// Package grammar собирает грамматику сообщений Discord: базовые правила
// markdown плюс ссылки на команды, каналы, сообщения, вложения и медиа-посты.
package grammar

import "discord-speakable/internal/markdown"

// linkOrder ставит ссылки Discord перед общим правилом url.
const linkOrder = markdown.OrderURL - 0.5

// MessageRules возвращает полный набор правил для содержимого сообщения.
func MessageRules() markdown.Rules {
	return append(markdown.DefaultRules(),
		markdown.Rule{
			Name:  "command",
			Order: markdown.OrderStrong,
			Match: MatchCommand,
			Parse: parseCommand,
		},
		markdown.Rule{
			Name:  "channelOrMessageLink",
			Order: linkOrder,
			Match: MatchChannelOrMessageLink,
			Parse: parseChannelOrMessageLink,
		},
		markdown.Rule{
			Name:  "attachmentLink",
			Order: linkOrder,
			Match: MatchAttachmentLink,
			Parse: parseAttachmentLink,
		},
		markdown.Rule{
			Name:  "mediaPostLink",
			Order: linkOrder,
			Match: MatchMediaPostLink,
			Parse: parseMediaPostLink,
		},
	)
}

// NewMessageParser возвращает строчный парсер содержимого сообщения.
func NewMessageParser() markdown.Parser {
	return markdown.ParserFor(MessageRules(), markdown.Options{Inline: true})
}

// NewNameParser возвращает парсер отображаемых имен: только эмодзи и текст.
func NewNameParser() markdown.Parser {
	return markdown.ParserFor(markdown.DefaultRules().Pick("twemoji", "text"), markdown.Options{Inline: true})
}
