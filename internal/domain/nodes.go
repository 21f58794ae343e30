package domain

// NodeType — дискриминатор варианта узла AST.
type NodeType string

const (
	NodeText                 NodeType = "text"
	NodeEscape               NodeType = "escape"
	NodeInlineCode           NodeType = "inlineCode"
	NodeCodeBlock            NodeType = "codeBlock"
	NodeURL                  NodeType = "url"
	NodeAutolink             NodeType = "autolink"
	NodeLink                 NodeType = "link"
	NodeBlockQuote           NodeType = "blockQuote"
	NodeEm                   NodeType = "em"
	NodeStrong               NodeType = "strong"
	NodeUnderline            NodeType = "underline"
	NodeStrikethrough        NodeType = "strikethrough"
	NodeSpoiler              NodeType = "spoiler"
	NodeNewline              NodeType = "newline"
	NodeBr                   NodeType = "br"
	NodeUser                 NodeType = "user"
	NodeChannel              NodeType = "channel"
	NodeRole                 NodeType = "role"
	NodeEveryone             NodeType = "everyone"
	NodeHere                 NodeType = "here"
	NodeEmoji                NodeType = "emoji"
	NodeTwemoji              NodeType = "twemoji"
	NodeTimestamp            NodeType = "timestamp"
	NodeCommand              NodeType = "command"
	NodeChannelOrMessageLink NodeType = "channelOrMessageLink"
	NodeAttachmentLink       NodeType = "attachmentLink"
	NodeMediaPostLink        NodeType = "mediaPostLink"
)

// Node — узел AST разметки чата. Набор вариантов закрыт: реализовать
// интерфейс можно только внутри пакета domain.
type Node interface {
	Type() NodeType
	node()
}

// Text представляет обычный текст.
type Text struct {
	Content string
}

// Escape представляет экранированный символ (`\*`).
type Escape struct {
	Content string
}

// InlineCode представляет код в одинарных обратных кавычках.
type InlineCode struct {
	Content string
}

// CodeBlock представляет блок кода в тройных обратных кавычках.
type CodeBlock struct {
	Lang    string
	Content string
	InQuote bool
}

// URL представляет голую ссылку в тексте.
type URL struct {
	Target string
}

// Autolink представляет ссылку в угловых скобках (`<https://...>`).
type Autolink struct {
	Target string
}

// Link представляет маскированную ссылку `[текст](адрес)`.
type Link struct {
	Content []Node
	Target  string
	Title   string
}

// BlockQuote представляет цитату (`> ` или `>>> `).
type BlockQuote struct {
	Content []Node
}

// Em представляет курсив `*...*` или `_..._`.
type Em struct {
	Content []Node
}

// Strong представляет жирный текст `**...**`.
type Strong struct {
	Content []Node
}

// Underline представляет подчеркнутый текст `__...__`.
type Underline struct {
	Content []Node
}

// Strikethrough представляет зачеркнутый текст `~~...~~`.
type Strikethrough struct {
	Content []Node
}

// Spoiler представляет скрытый текст `||...||`.
type Spoiler struct {
	Content []Node
}

// Newline представляет перевод строки.
type Newline struct{}

// Br представляет жесткий перенос: два пробела перед переводом строки.
type Br struct{}

// User — упоминание пользователя `<@id>`.
type User struct {
	ID string
}

// Channel — упоминание канала `<#id>`.
type Channel struct {
	ID string
}

// Role — упоминание роли `<@&id>`.
type Role struct {
	ID string
}

// Everyone представляет упоминание @everyone.
type Everyone struct{}

// Here представляет упоминание @here.
type Here struct{}

// Emoji — пользовательский эмодзи сервера `<:name:id>` или `<a:name:id>`.
type Emoji struct {
	Name     string
	ID       string
	Animated bool
}

// Twemoji — стандартный эмодзи Unicode; Name содержит сам эмодзи.
type Twemoji struct {
	Name string
}

// Timestamp — метка времени `<t:секунды:формат>`. Timestamp хранит
// исходную строку секунд без проверки диапазона.
type Timestamp struct {
	Timestamp string
	Format    string
}

// Command — ссылка на слэш-команду `</name:id>`.
type Command struct {
	Name string
	ID   string
}

// ChannelOrMessageLink — ссылка на канал или сообщение. ChannelID и
// MessageID пусты, если не были захвачены.
type ChannelOrMessageLink struct {
	GuildIDOrMe string
	ChannelID   string
	MessageID   string
}

// AttachmentLink — ссылка на вложение в CDN.
type AttachmentLink struct {
	Filename string
}

// MediaPostLink — ссылка на сообщение в ветке медиа-канала.
type MediaPostLink struct {
	GuildID   string
	ChannelID string
	ThreadID  string
	MessageID string
}

func (Text) Type() NodeType                 { return NodeText }
func (Escape) Type() NodeType               { return NodeEscape }
func (InlineCode) Type() NodeType           { return NodeInlineCode }
func (CodeBlock) Type() NodeType            { return NodeCodeBlock }
func (URL) Type() NodeType                  { return NodeURL }
func (Autolink) Type() NodeType             { return NodeAutolink }
func (Link) Type() NodeType                 { return NodeLink }
func (BlockQuote) Type() NodeType           { return NodeBlockQuote }
func (Em) Type() NodeType                   { return NodeEm }
func (Strong) Type() NodeType               { return NodeStrong }
func (Underline) Type() NodeType            { return NodeUnderline }
func (Strikethrough) Type() NodeType        { return NodeStrikethrough }
func (Spoiler) Type() NodeType              { return NodeSpoiler }
func (Newline) Type() NodeType              { return NodeNewline }
func (Br) Type() NodeType                   { return NodeBr }
func (User) Type() NodeType                 { return NodeUser }
func (Channel) Type() NodeType              { return NodeChannel }
func (Role) Type() NodeType                 { return NodeRole }
func (Everyone) Type() NodeType             { return NodeEveryone }
func (Here) Type() NodeType                 { return NodeHere }
func (Emoji) Type() NodeType                { return NodeEmoji }
func (Twemoji) Type() NodeType              { return NodeTwemoji }
func (Timestamp) Type() NodeType            { return NodeTimestamp }
func (Command) Type() NodeType              { return NodeCommand }
func (ChannelOrMessageLink) Type() NodeType { return NodeChannelOrMessageLink }
func (AttachmentLink) Type() NodeType       { return NodeAttachmentLink }
func (MediaPostLink) Type() NodeType        { return NodeMediaPostLink }

func (Text) node()                 {}
func (Escape) node()               {}
func (InlineCode) node()           {}
func (CodeBlock) node()            {}
func (URL) node()                  {}
func (Autolink) node()             {}
func (Link) node()                 {}
func (BlockQuote) node()           {}
func (Em) node()                   {}
func (Strong) node()               {}
func (Underline) node()            {}
func (Strikethrough) node()        {}
func (Spoiler) node()              {}
func (Newline) node()              {}
func (Br) node()                   {}
func (User) node()                 {}
func (Channel) node()              {}
func (Role) node()                 {}
func (Everyone) node()             {}
func (Here) node()                 {}
func (Emoji) node()                {}
func (Twemoji) node()              {}
func (Timestamp) node()            {}
func (Command) node()              {}
func (ChannelOrMessageLink) node() {}
func (AttachmentLink) node()       {}
func (MediaPostLink) node()        {}
