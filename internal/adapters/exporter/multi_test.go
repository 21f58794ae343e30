package exporter

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"discord-speakable/internal/domain"
)

func TestMultiExporter(t *testing.T) {
	t.Run("реплика доходит до всех экспортеров", func(t *testing.T) {
		var first, second bytes.Buffer
		m := NewMultiExporter(NewConsoleExporter(&first), nil, NewConsoleExporter(&second))

		assert.NoError(t, m.Export(domain.Utterance{Author: "a", Text: "b"}))
		assert.Equal(t, "a: b\n", first.String())
		assert.Equal(t, "a: b\n", second.String())
	})

	t.Run("ошибка одного не останавливает остальных", func(t *testing.T) {
		var buf bytes.Buffer
		m := NewMultiExporter(NewConsoleExporter(brokenWriter{}), NewConsoleExporter(&buf))

		err := m.Export(domain.Utterance{Text: "x"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		assert.Equal(t, "x\n", buf.String())
	})
}
