package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDateFormatter(t *testing.T) {
	f := NewDateFormatter(nil)
	monday := time.Unix(1705277130, 0) // 2024-01-15 09:05:30 JST

	t.Run("Parts выдает полный японский формат", func(t *testing.T) {
		var full string
		for _, p := range f.Parts(monday) {
			full += p.Value
		}

		assert.Equal(t, "2024年1月15日月曜日 9時05分30秒 日本標準時", full)
	})

	t.Run("Segments убирает ведущие нули и присоединяет разделители", func(t *testing.T) {
		assert.Equal(t, []string{"2024年", "1月", "15日月曜日 ", "9時", "5分", "30秒"}, f.Segments(monday))
	})

	t.Run("число сегментов не зависит от даты", func(t *testing.T) {
		dates := []time.Time{
			monday,
			time.Unix(0, 0),
			time.Unix(1704034799, 0),
			time.UnixMilli(-8_640_000_000_000_000),
			time.UnixMilli(8_640_000_000_000_000),
		}
		for _, d := range dates {
			assert.Len(t, f.Segments(d), 6, "дата %v", d)
		}
	})

	t.Run("нулевые минуты и секунды читаются как 0", func(t *testing.T) {
		midnight := time.Date(2024, 3, 1, 0, 0, 0, 0, f.Location())

		assert.Equal(t, []string{"2024年", "3月", "1日金曜日 ", "0時", "0分", "0秒"}, f.Segments(midnight))
	})

	t.Run("годы до нашей эры сохраняют число сегментов", func(t *testing.T) {
		parts := f.Parts(time.Date(0, 1, 1, 12, 0, 0, 0, f.Location()))

		require.NotEmpty(t, parts)
		assert.Equal(t, PartEra, parts[0].Type)
		assert.Equal(t, "1", parts[1].Value)
	})

	t.Run("произвольный часовой пояс", func(t *testing.T) {
		utc := NewDateFormatter(time.UTC)

		assert.Equal(t, []string{"2024年", "1月", "15日月曜日 ", "0時", "5分", "30秒"}, utc.Segments(monday))
	})
}
