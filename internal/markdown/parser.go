// Package markdown реализует разбор разметки по упорядоченной таблице правил:
// на каждой позиции правила пробуются по возрастанию порядка, и первое
// совпавшее превращает захват в узел AST.
package markdown

import (
	"cmp"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/dlclark/regexp2"

	"discord-speakable/internal/domain"
)

// MaxDepth ограничивает глубину вложенного разбора.
const MaxDepth = 32

// matchTimeout ограничивает время одного сопоставления регулярного выражения.
const matchTimeout = 250 * time.Millisecond

// parseBudget ограничивает время разбора одного входа. После его исчерпания
// остаток входа становится текстом.
const parseBudget = 2 * time.Second

// Capture — результат совпадения правила. Capture[0] — весь совпавший фрагмент,
// остальные элементы — группы; не участвовавшая в совпадении группа пуста.
type Capture []string

// Group возвращает группу i или пустую строку.
func (c Capture) Group(i int) string {
	if i < len(c) {
		return c[i]
	}
	return ""
}

// State описывает контекст текущей позиции разбора.
type State struct {
	Inline      bool
	InQuote     bool
	Nested      bool
	PrevCapture string
	Depth       int

	// Входные руны текущего уровня разбора и позиция в них; заполняются парсером.
	input    []rune
	pos      int
	deadline time.Time
}

// NestedParse разбирает вложенное содержимое тем же набором правил.
type NestedParse func(source string, state State) []domain.Node

// MatchFunc проверяет начало source и возвращает захват или nil. source — остаток
// входа с текущей позиции state.
type MatchFunc func(source string, state State) Capture

// ParseFunc превращает захват в узел.
type ParseFunc func(capture Capture, parse NestedParse, state State) domain.Node

// QualityFunc оценивает захват; среди правил одного порядка с оценкой побеждает лучший.
type QualityFunc func(capture Capture) float64

// Rule — одно правило грамматики.
type Rule struct {
	Name    string
	Order   float64
	Match   MatchFunc
	Parse   ParseFunc
	Quality QualityFunc
}

// Rules — упорядоченный по объявлению набор правил.
type Rules []Rule

// Pick возвращает правила с указанными именами в порядке их объявления.
func (r Rules) Pick(names ...string) Rules {
	var picked Rules
	for _, rule := range r {
		if slices.Contains(names, rule.Name) {
			picked = append(picked, rule)
		}
	}
	return picked
}

// Options настраивает парсер.
type Options struct {
	// Inline включает строчный режим: весь вход считается одним строчным фрагментом.
	Inline bool
}

// Parser превращает исходный текст в последовательность узлов.
type Parser func(source string) []domain.Node

type parser struct {
	rules []Rule
}

// ParserFor собирает парсер из набора правил. Правила сортируются по Order;
// при равном порядке правила с Quality идут первыми, остальные — в порядке объявления.
func ParserFor(rules Rules, opts Options) Parser {
	sorted := slices.Clone(rules)
	slices.SortStableFunc(sorted, func(a, b Rule) int {
		if c := cmp.Compare(a.Order, b.Order); c != 0 {
			return c
		}
		return cmp.Compare(qualityRank(a), qualityRank(b))
	})
	p := &parser{rules: sorted}

	return func(source string) []domain.Node {
		if !opts.Inline {
			source = strings.TrimRight(source, "\n") + "\n\n"
		}
		return p.parse(source, State{Inline: opts.Inline, deadline: time.Now().Add(parseBudget)})
	}
}

func qualityRank(r Rule) int {
	if r.Quality != nil {
		return 0
	}
	return 1
}

func (p *parser) parse(source string, state State) []domain.Node {
	if state.Depth > MaxDepth {
		return []domain.Node{domain.Text{Content: source}}
	}
	// Байтовые смещения и позиции в рунах совпадают только на корректном UTF-8.
	if !utf8.ValidString(source) {
		source = strings.ToValidUTF8(source, string(utf8.RuneError))
	}
	state.input = []rune(source)
	state.pos = 0

	var (
		nodes []domain.Node
		text  strings.Builder
	)
	flush := func() {
		if text.Len() > 0 {
			nodes = append(nodes, domain.Text{Content: text.String()})
			text.Reset()
		}
	}

	for off := 0; off < len(source); {
		rest := source[off:]
		if !state.deadline.IsZero() && time.Now().After(state.deadline) {
			text.WriteString(rest)
			break
		}

		var (
			consumed string
			node     domain.Node
		)
		rule, capture := p.match(rest, state)
		if rule == nil {
			// Ни одно правило не поглотило вход: отдаем одну руну как текст.
			_, size := utf8.DecodeRuneInString(rest)
			consumed = rest[:size]
			node = domain.Text{Content: consumed}
		} else {
			consumed = capture[0]
			if rule.Parse != nil {
				node = rule.Parse(capture, p.nested, state)
			}
		}

		switch n := node.(type) {
		case nil:
		case domain.Text:
			text.WriteString(n.Content)
		default:
			flush()
			nodes = append(nodes, n)
		}

		off += len(consumed)
		state.pos += utf8.RuneCountInString(consumed)
		state.PrevCapture = consumed
	}
	flush()

	return nodes
}

func (p *parser) nested(source string, state State) []domain.Node {
	state.Depth++
	state.Nested = true
	return p.parse(source, state)
}

func (p *parser) match(source string, state State) (*Rule, Capture) {
	var (
		chosen  *Rule
		capture Capture
		quality float64
	)
	for i := range p.rules {
		rule := &p.rules[i]
		if chosen != nil && (rule.Quality == nil || rule.Order != p.rules[i-1].Order) {
			break
		}
		c := rule.Match(source, state)
		if len(c) == 0 || c[0] == "" {
			continue
		}
		q := 0.0
		if rule.Quality != nil {
			q = rule.Quality(c)
		}
		if chosen == nil || q > quality {
			chosen, capture, quality = rule, c, q
		}
	}
	return chosen, capture
}

// Regex возвращает функцию сопоставления, работающую в любом режиме.
// Шаблон должен начинаться с ^ и сопоставляется только с текущей позиции.
func Regex(pattern string) MatchFunc {
	re := compile(pattern)
	return func(source string, state State) Capture {
		return find(re, source, state)
	}
}

// InlineRegex возвращает функцию сопоставления, работающую только в строчном режиме.
func InlineRegex(pattern string) MatchFunc {
	re := compile(pattern)
	return func(source string, state State) Capture {
		if !state.Inline {
			return nil
		}
		return find(re, source, state)
	}
}

// compile заменяет ведущий ^ на \G: в рунах всего входа шаблон привязан
// к позиции начала поиска, а не к началу строки.
func compile(pattern string) *regexp2.Regexp {
	if !strings.HasPrefix(pattern, "^") {
		panic("markdown: pattern must start with ^: " + pattern)
	}
	re := regexp2.MustCompile(`\G(?:`+pattern[1:]+`)`, regexp2.None)
	re.MatchTimeout = matchTimeout
	return re
}

func find(re *regexp2.Regexp, source string, state State) Capture {
	var (
		m     *regexp2.Match
		err   error
		start int
	)
	if state.input != nil {
		start = state.pos
		m, err = re.FindRunesMatchStartingAt(state.input, start)
	} else {
		m, err = re.FindStringMatch(source)
	}
	if err != nil || m == nil || m.Index != start {
		return nil
	}
	groups := m.Groups()
	c := make(Capture, len(groups))
	for i, g := range groups {
		if len(g.Captures) > 0 {
			c[i] = g.String()
		}
	}
	return c
}
