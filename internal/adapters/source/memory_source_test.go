package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemorySource(t *testing.T) {
	t.Run("NewMemorySource создает корректный экземпляр", func(t *testing.T) {
		assert.NotNil(t, NewMemorySource([]byte("test data")))
	})

	t.Run("Fetch возвращает установленные данные", func(t *testing.T) {
		expectedData := []byte("test data")
		source := NewMemorySource(expectedData)

		actualData, err := source.Fetch()

		assert.NoError(t, err)
		assert.Equal(t, expectedData, actualData)
	})

	t.Run("пустое сообщение считается отсутствием ввода", func(t *testing.T) {
		for _, data := range [][]byte{nil, {}} {
			actualData, err := NewMemorySource(data).Fetch()

			assert.ErrorIs(t, err, ErrNoInput)
			assert.Nil(t, actualData)
			assert.Contains(t, err.Error(), "empty message")
		}
	})

	t.Run("Fetch возвращает копию данных", func(t *testing.T) {
		originalData := []byte("test data")
		source := NewMemorySource(originalData)

		fetchedData, err := source.Fetch()
		assert.NoError(t, err)

		// Изменяем полученные данные
		fetchedData[0] = 'X'

		assert.Equal(t, []byte("test data"), originalData)
	})
}
