package markdown

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

const (
	variationSelector = '\ufe0f'
	combiningKeycap   = '\u20e3'
)

// emojiBase содержит руны, с которых начинаются стандартные эмодзи Unicode.
var emojiBase = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x203c, Hi: 0x203c, Stride: 1},
		{Lo: 0x2049, Hi: 0x2049, Stride: 1},
		{Lo: 0x2139, Hi: 0x2139, Stride: 1},
		{Lo: 0x2194, Hi: 0x2199, Stride: 1},
		{Lo: 0x21a9, Hi: 0x21aa, Stride: 1},
		{Lo: 0x231a, Hi: 0x231b, Stride: 1},
		{Lo: 0x2328, Hi: 0x2328, Stride: 1},
		{Lo: 0x23cf, Hi: 0x23cf, Stride: 1},
		{Lo: 0x23e9, Hi: 0x23f3, Stride: 1},
		{Lo: 0x23f8, Hi: 0x23fa, Stride: 1},
		{Lo: 0x24c2, Hi: 0x24c2, Stride: 1},
		{Lo: 0x25aa, Hi: 0x25ab, Stride: 1},
		{Lo: 0x25b6, Hi: 0x25b6, Stride: 1},
		{Lo: 0x25c0, Hi: 0x25c0, Stride: 1},
		{Lo: 0x25fb, Hi: 0x25fe, Stride: 1},
		{Lo: 0x2600, Hi: 0x27bf, Stride: 1},
		{Lo: 0x2934, Hi: 0x2935, Stride: 1},
		{Lo: 0x2b05, Hi: 0x2b07, Stride: 1},
		{Lo: 0x2b1b, Hi: 0x2b1c, Stride: 1},
		{Lo: 0x2b50, Hi: 0x2b50, Stride: 1},
		{Lo: 0x2b55, Hi: 0x2b55, Stride: 1},
		{Lo: 0x3030, Hi: 0x3030, Stride: 1},
		{Lo: 0x303d, Hi: 0x303d, Stride: 1},
		{Lo: 0x3297, Hi: 0x3297, Stride: 1},
		{Lo: 0x3299, Hi: 0x3299, Stride: 1},
	},
	R32: []unicode.Range32{
		{Lo: 0x1f004, Hi: 0x1f004, Stride: 1},
		{Lo: 0x1f0cf, Hi: 0x1f0cf, Stride: 1},
		{Lo: 0x1f170, Hi: 0x1f251, Stride: 1},
		{Lo: 0x1f300, Hi: 0x1f6ff, Stride: 1},
		{Lo: 0x1f7e0, Hi: 0x1f7ff, Stride: 1},
		{Lo: 0x1f900, Hi: 0x1f9ff, Stride: 1},
		{Lo: 0x1fa70, Hi: 0x1faff, Stride: 1},
	},
}

// matchTwemoji распознает в строчном режиме стандартный эмодзи в начале source.
// Захват — кластер графем целиком: модификаторы тона кожи, ZWJ-последовательности,
// флаги и keycap не разрываются.
func matchTwemoji(source string, state State) Capture {
	if !state.Inline || source == "" {
		return nil
	}
	cluster, _, _, _ := uniseg.FirstGraphemeClusterInString(source, -1)
	if !isEmoji(cluster) {
		return nil
	}
	return Capture{cluster}
}

// isEmoji проверяет кластер графем. Цифры, # и * считаются эмодзи только
// в составе keycap, а ©, ® и ™ только с селектором варианта U+FE0F.
func isEmoji(cluster string) bool {
	r, size := utf8.DecodeRuneInString(cluster)
	rest := cluster[size:]
	switch {
	case ('0' <= r && r <= '9') || r == '#' || r == '*':
		return strings.ContainsRune(rest, combiningKeycap)
	case r == 0xa9 || r == 0xae || r == 0x2122:
		return strings.ContainsRune(rest, variationSelector)
	default:
		return unicode.Is(emojiBase, r)
	}
}
