package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"discord-speakable/internal/domain"
)

func TestDefaultRules(t *testing.T) {
	parse := ParserFor(DefaultRules(), Options{Inline: true})

	tests := []struct {
		name   string
		source string
		want   []domain.Node
	}{
		{
			name:   "упоминание пользователя",
			source: "hi <@123456789012345678>",
			want:   []domain.Node{domain.Text{Content: "hi "}, domain.User{ID: "123456789012345678"}},
		},
		{
			name:   "упоминание с восклицательным знаком",
			source: "<@!123456789012345678>",
			want:   []domain.Node{domain.User{ID: "123456789012345678"}},
		},
		{
			name:   "канал и роль",
			source: "<#123456789012345678><@&223456789012345678>",
			want:   []domain.Node{domain.Channel{ID: "123456789012345678"}, domain.Role{ID: "223456789012345678"}},
		},
		{
			name:   "пользовательский анимированный эмодзи",
			source: "<a:party:123456789012345678>",
			want:   []domain.Node{domain.Emoji{Name: "party", ID: "123456789012345678", Animated: true}},
		},
		{
			name:   "стандартный эмодзи",
			source: "👋 hi",
			want:   []domain.Node{domain.Twemoji{Name: "👋"}, domain.Text{Content: " hi"}},
		},
		{
			name:   "эмодзи с тоном кожи целиком",
			source: "👍🏽",
			want:   []domain.Node{domain.Twemoji{Name: "👍🏽"}},
		},
		{
			name:   "ZWJ-последовательность и флаг",
			source: "👨‍👩‍👧🇯🇵",
			want:   []domain.Node{domain.Twemoji{Name: "👨‍👩‍👧"}, domain.Twemoji{Name: "🇯🇵"}},
		},
		{
			name:   "keycap",
			source: "1️⃣",
			want:   []domain.Node{domain.Twemoji{Name: "1️⃣"}},
		},
		{
			name:   "короткий код остается текстом",
			source: ":wave:",
			want:   []domain.Node{domain.Text{Content: ":wave:"}},
		},
		{
			name:   "слова через двоеточие остаются текстом",
			source: "key:value:other",
			want:   []domain.Node{domain.Text{Content: "key:value:other"}},
		},
		{
			name:   "время не считается эмодзи",
			source: "10:30:45",
			want:   []domain.Node{domain.Text{Content: "10:30:45"}},
		},
		{
			name:   "метка времени с форматом",
			source: "<t:1700000000:R>",
			want:   []domain.Node{domain.Timestamp{Timestamp: "1700000000", Format: "R"}},
		},
		{
			name:   "everyone и here",
			source: "@everyone @here",
			want:   []domain.Node{domain.Everyone{}, domain.Text{Content: " "}, domain.Here{}},
		},
		{
			name:   "спойлер с вложенным жирным",
			source: "||**x**||",
			want:   []domain.Node{domain.Spoiler{Content: []domain.Node{domain.Strong{Content: []domain.Node{domain.Text{Content: "x"}}}}}},
		},
		{
			name:   "подчеркивание и зачеркивание",
			source: "__u__~~s~~",
			want: []domain.Node{
				domain.Underline{Content: []domain.Node{domain.Text{Content: "u"}}},
				domain.Strikethrough{Content: []domain.Node{domain.Text{Content: "s"}}},
			},
		},
		{
			name:   "код в строке",
			source: "run `go test`",
			want:   []domain.Node{domain.Text{Content: "run "}, domain.InlineCode{Content: "go test"}},
		},
		{
			name:   "блок кода с языком",
			source: "```go\nfmt.Println()\n```",
			want:   []domain.Node{domain.CodeBlock{Lang: "go", Content: "fmt.Println()"}},
		},
		{
			name:   "голая ссылка",
			source: "see https://example.com/a.",
			want:   []domain.Node{domain.Text{Content: "see "}, domain.URL{Target: "https://example.com/a"}, domain.Text{Content: "."}},
		},
		{
			name:   "маскированная ссылка",
			source: "[docs](https://example.com)",
			want:   []domain.Node{domain.Link{Content: []domain.Node{domain.Text{Content: "docs"}}, Target: "https://example.com"}},
		},
		{
			name:   "автоссылка",
			source: "<https://example.com>",
			want:   []domain.Node{domain.Autolink{Target: "https://example.com"}},
		},
		{
			name:   "экранирование",
			source: `\*not em\*`,
			want:   []domain.Node{domain.Escape{Content: "*"}, domain.Text{Content: "not em"}, domain.Escape{Content: "*"}},
		},
		{
			name:   "перевод строки",
			source: "a\nb",
			want:   []domain.Node{domain.Text{Content: "a"}, domain.Newline{}, domain.Text{Content: "b"}},
		},
		{
			name:   "цитата в начале строки",
			source: "> quoted",
			want:   []domain.Node{domain.BlockQuote{Content: []domain.Node{domain.Text{Content: "quoted"}}}},
		},
		{
			name:   "многострочная цитата",
			source: ">>> a\nb",
			want:   []domain.Node{domain.BlockQuote{Content: []domain.Node{domain.Text{Content: "a"}, domain.Newline{}, domain.Text{Content: "b"}}}},
		},
		{
			name:   "смайлик с подчеркиванием",
			source: `¯\_(ツ)_/¯`,
			want:   []domain.Node{domain.Text{Content: `¯\_(ツ)_/¯`}},
		},
		{
			name:   "короткий идентификатор не считается упоминанием",
			source: "<@123>",
			want:   []domain.Node{domain.Text{Content: "<@123>"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parse(tt.source))
		})
	}
}
