package exporter

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"discord-speakable/internal/domain"
)

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestConsoleExporter(t *testing.T) {
	t.Run("NewConsoleExporter создает корректный экземпляр", func(t *testing.T) {
		assert.NotNil(t, NewConsoleExporter(nil))
	})

	t.Run("Export выводит автора и текст", func(t *testing.T) {
		var buf bytes.Buffer
		exporter := NewConsoleExporter(&buf)

		err := exporter.Export(domain.Utterance{Author: "Alice", Text: "こんにちは 伏字 "})
		assert.NoError(t, err)
		err = exporter.Export(domain.Utterance{Text: "без автора"})
		assert.NoError(t, err)

		assert.Equal(t, "Alice: こんにちは 伏字 \nбез автора\n", buf.String())
	})

	t.Run("ошибка записи возвращается", func(t *testing.T) {
		exporter := NewConsoleExporter(brokenWriter{})

		err := exporter.Export(domain.Utterance{Text: "x"})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
	})
}
