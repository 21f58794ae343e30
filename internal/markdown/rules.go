package markdown

import (
	"regexp"
	"unicode/utf8"

	"discord-speakable/internal/domain"
)

// Порядок правил. Правила с меньшим порядком пробуются раньше.
const (
	OrderBlockQuote float64 = iota
	OrderCodeBlock
	OrderNewline
	OrderEscape
	OrderAutolink
	OrderURL
	OrderLink
	OrderStrong
	OrderStrikethrough
	OrderInlineCode
	OrderBr
	OrderText
)

var (
	blockQuoteStart  = regexp.MustCompile(`(?:^|\n *)$`)
	blockQuotePrefix = regexp.MustCompile(`(?m)^ *> ?`)
)

// DefaultRules возвращает базовую грамматику разметки Discord:
// markdown-конструкции, упоминания, эмодзи, метки времени и спойлеры.
func DefaultRules() Rules {
	return Rules{
		{
			Name:  "blockQuote",
			Order: OrderBlockQuote,
			Match: matchBlockQuote(),
			Parse: func(c Capture, parse NestedParse, state State) domain.Node {
				content := c.Group(2)
				if c.Group(1) == "" {
					content = blockQuotePrefix.ReplaceAllString(c.Group(3), "")
				}
				state.InQuote = true
				return domain.BlockQuote{Content: parse(content, state)}
			},
		},
		{
			Name:  "codeBlock",
			Order: OrderCodeBlock,
			Match: Regex("^(?i)```(?:([a-z0-9_+\\-.#]+?)\\n)?\\n*([^\\n][\\s\\S]*?)\\n*```"),
			Parse: func(c Capture, _ NestedParse, state State) domain.Node {
				return domain.CodeBlock{Lang: c.Group(1), Content: c.Group(2), InQuote: state.InQuote}
			},
		},
		{
			Name:  "newline",
			Order: OrderNewline,
			Match: Regex(`^(?:\n *)*\n`),
			Parse: func(Capture, NestedParse, State) domain.Node {
				return domain.Newline{}
			},
		},
		{
			Name:  "escape",
			Order: OrderEscape,
			Match: InlineRegex(`^\\([^0-9A-Za-z\s])`),
			Parse: func(c Capture, _ NestedParse, _ State) domain.Node {
				return domain.Escape{Content: c.Group(1)}
			},
		},
		{
			Name:  "autolink",
			Order: OrderAutolink,
			Match: InlineRegex(`^<([^: >]+:\/[^ >]+)>`),
			Parse: func(c Capture, _ NestedParse, _ State) domain.Node {
				return domain.Autolink{Target: c.Group(1)}
			},
		},
		{
			Name:  "url",
			Order: OrderURL,
			Match: InlineRegex(`^(https?:\/\/[^\s<]+[^<.,:;"')\]\s])`),
			Parse: func(c Capture, _ NestedParse, _ State) domain.Node {
				return domain.URL{Target: c.Group(1)}
			},
		},
		{
			Name:  "link",
			Order: OrderLink,
			Match: InlineRegex(`^\[((?:\[[^\]]*\]|[^\[\]]|\](?=[^\[]*\]))*)\]\(\s*<?((?:\([^)]*\)|[^\s\\]|\\.)*?)>?(?:\s+['"]([\s\S]*?)['"])?\s*\)`),
			Parse: func(c Capture, parse NestedParse, state State) domain.Node {
				return domain.Link{Content: parse(c.Group(1), state), Target: c.Group(2), Title: c.Group(3)}
			},
		},
		{
			Name:    "em",
			Order:   OrderStrong,
			Match:   InlineRegex(`^(?:_((?:__|\\[\s\S]|[^\\_])+?)_\b|\*(?=\S)((?:\*\*|\\[\s\S]|\s+(?:\\[\s\S]|[^\s\*\\]|\*\*)|[^\s\*\\])+?)\*(?!\*))`),
			Quality: func(c Capture) float64 { return float64(len(c[0])) + 0.2 },
			Parse: func(c Capture, parse NestedParse, state State) domain.Node {
				content := c.Group(2)
				if content == "" {
					content = c.Group(1)
				}
				return domain.Em{Content: parse(content, state)}
			},
		},
		{
			Name:    "strong",
			Order:   OrderStrong,
			Match:   InlineRegex(`^\*\*((?:\\[\s\S]|[^\\])+?)\*\*(?!\*)`),
			Quality: func(c Capture) float64 { return float64(len(c[0])) + 0.1 },
			Parse: func(c Capture, parse NestedParse, state State) domain.Node {
				return domain.Strong{Content: parse(c.Group(1), state)}
			},
		},
		{
			Name:    "underline",
			Order:   OrderStrong,
			Match:   InlineRegex(`^__((?:\\[\s\S]|[^\\])+?)__(?!_)`),
			Quality: func(c Capture) float64 { return float64(len(c[0])) },
			Parse: func(c Capture, parse NestedParse, state State) domain.Node {
				return domain.Underline{Content: parse(c.Group(1), state)}
			},
		},
		{
			Name:  "user",
			Order: OrderStrong,
			Match: InlineRegex(`^<@!?([0-9]{17,20})>`),
			Parse: func(c Capture, _ NestedParse, _ State) domain.Node {
				return domain.User{ID: c.Group(1)}
			},
		},
		{
			Name:  "channel",
			Order: OrderStrong,
			Match: InlineRegex(`^<#([0-9]{17,20})>`),
			Parse: func(c Capture, _ NestedParse, _ State) domain.Node {
				return domain.Channel{ID: c.Group(1)}
			},
		},
		{
			Name:  "role",
			Order: OrderStrong,
			Match: InlineRegex(`^<@&([0-9]{17,20})>`),
			Parse: func(c Capture, _ NestedParse, _ State) domain.Node {
				return domain.Role{ID: c.Group(1)}
			},
		},
		{
			Name:  "emoji",
			Order: OrderStrong,
			Match: InlineRegex(`^<(a?):(\w+):([0-9]{17,20})>`),
			Parse: func(c Capture, _ NestedParse, _ State) domain.Node {
				return domain.Emoji{Name: c.Group(2), ID: c.Group(3), Animated: c.Group(1) == "a"}
			},
		},
		{
			Name:  "everyone",
			Order: OrderStrong,
			Match: InlineRegex(`^@everyone`),
			Parse: func(Capture, NestedParse, State) domain.Node {
				return domain.Everyone{}
			},
		},
		{
			Name:  "here",
			Order: OrderStrong,
			Match: InlineRegex(`^@here`),
			Parse: func(Capture, NestedParse, State) domain.Node {
				return domain.Here{}
			},
		},
		{
			Name:  "twemoji",
			Order: OrderStrong,
			Match: matchTwemoji,
			Parse: func(c Capture, _ NestedParse, _ State) domain.Node {
				return domain.Twemoji{Name: c[0]}
			},
		},
		{
			Name:  "timestamp",
			Order: OrderStrong,
			Match: InlineRegex(`^<t:(-?[0-9]{1,17})(?::([tTdDfFR]))?>`),
			Parse: func(c Capture, _ NestedParse, _ State) domain.Node {
				return domain.Timestamp{Timestamp: c.Group(1), Format: c.Group(2)}
			},
		},
		{
			Name:  "spoiler",
			Order: OrderStrong,
			Match: InlineRegex(`^\|\|([\s\S]+?)\|\|`),
			Parse: func(c Capture, parse NestedParse, state State) domain.Node {
				return domain.Spoiler{Content: parse(c.Group(1), state)}
			},
		},
		{
			Name:  "strikethrough",
			Order: OrderStrikethrough,
			Match: InlineRegex(`^~~([\s\S]+?)~~(?!_)`),
			Parse: func(c Capture, parse NestedParse, state State) domain.Node {
				return domain.Strikethrough{Content: parse(c.Group(1), state)}
			},
		},
		{
			Name:  "inlineCode",
			Order: OrderInlineCode,
			Match: InlineRegex("^(`+)([\\s\\S]*?[^`])\\1(?!`)"),
			Parse: func(c Capture, _ NestedParse, _ State) domain.Node {
				return domain.InlineCode{Content: c.Group(2)}
			},
		},
		{
			Name:  "br",
			Order: OrderBr,
			Match: Regex(`^ {2,}\n`),
			Parse: func(Capture, NestedParse, State) domain.Node {
				return domain.Br{}
			},
		},
		{
			Name:  "emoticon",
			Order: OrderText,
			Match: InlineRegex(`^¯\\_\(ツ\)_\/¯`),
			Parse: func(c Capture, _ NestedParse, _ State) domain.Node {
				return domain.Text{Content: c[0]}
			},
		},
		{
			Name:  "text",
			Order: OrderText,
			Match: matchText,
			Parse: func(c Capture, _ NestedParse, _ State) domain.Node {
				return domain.Text{Content: c[0]}
			},
		},
	}
}

// matchBlockQuote допускает цитату только в начале строки и не внутри другой цитаты.
func matchBlockQuote() MatchFunc {
	quote := Regex(`^(?:( *>>> ([\s\S]*))|( *> [^\n]*(\n *> [^\n]*)*\n?))`)
	return func(source string, state State) Capture {
		if state.InQuote || state.Nested || !blockQuoteStart.MatchString(state.PrevCapture) {
			return nil
		}
		return quote(source, state)
	}
}

// matchText поглощает хотя бы одну руну и останавливается перед символом, с
// которого может начаться другое правило: знаком препинания, переводом строки
// или словом, за которым следует ":" и не пробел (начало URL).
func matchText(source string, _ State) Capture {
	if source == "" {
		return nil
	}
	_, end := utf8.DecodeRuneInString(source)

	// Ответ для схемы одинаков во всей серии символов слова, поэтому серия
	// просматривается один раз.
	runEnd, schemeAhead := -1, false
	for end < len(source) {
		r, size := utf8.DecodeRuneInString(source[end:])
		if r == '\n' || !isTextRune(r) {
			break
		}
		if isWordByte(r) {
			if end >= runEnd {
				runEnd, schemeAhead = scanScheme(source, end)
			}
			if schemeAhead {
				break
			}
		}
		end += size
	}
	return Capture{source[:end]}
}

// scanScheme возвращает конец серии символов слова с позиции start и признак
// того, что за ней идут ":" и не пробел.
func scanScheme(source string, start int) (int, bool) {
	i := start
	for i < len(source) && isWordByte(rune(source[i])) {
		i++
	}
	if i+1 >= len(source) || source[i] != ':' {
		return i, false
	}
	next, _ := utf8.DecodeRuneInString(source[i+1:])
	return i, !isSpace(next)
}

// isTextRune сообщает, может ли руна продолжать текст: буквы и цифры ASCII,
// пробелы, дефис и все символы начиная с U+00C0.
func isTextRune(r rune) bool {
	return isAlnum(r) || isSpace(r) || r == '-' || r >= 0xc0
}

func isAlnum(r rune) bool {
	return ('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

func isWordByte(r rune) bool {
	return isAlnum(r) || r == '_'
}

func isSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', ' ', 0xa0, 0x1680, 0x2028, 0x2029, 0x202f, 0x205f, 0x3000, 0xfeff:
		return true
	}
	return 0x2000 <= r && r <= 0x200a
}
