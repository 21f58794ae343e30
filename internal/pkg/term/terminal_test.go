package term

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminal(t *testing.T) {
	t.Run("ReadLine читает строки и сообщает о конце ввода", func(t *testing.T) {
		var out bytes.Buffer
		tm := newTerminal(strings.NewReader("**первая**\r\nвторая"), &out, -1)

		line, err := tm.ReadLine("> ")
		require.NoError(t, err)
		assert.Equal(t, "**первая**", line)

		line, err = tm.ReadLine("> ")
		require.NoError(t, err)
		assert.Equal(t, "вторая", line)

		_, err = tm.ReadLine("> ")
		assert.ErrorIs(t, err, io.EOF)

		assert.Equal(t, "> > > ", out.String())
	})

	t.Run("Println пишет ответ", func(t *testing.T) {
		var out bytes.Buffer
		tm := newTerminal(strings.NewReader(""), &out, -1)

		require.NoError(t, tm.Println(" 伏字 "))
		assert.Equal(t, " 伏字 \n", out.String())
	})

	t.Run("не терминал не интерактивен", func(t *testing.T) {
		tm := newTerminal(strings.NewReader(""), io.Discard, -1)
		assert.False(t, tm.Interactive())
	})
}
