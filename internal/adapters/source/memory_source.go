package source

import (
	"bytes"
	"fmt"

	"discord-speakable/internal/ports"
)

// MemorySource отдает сообщение, уже находящееся в памяти, например строку,
// введенную в интерактивном режиме.
type MemorySource struct {
	data []byte
}

// NewMemorySource создает новый экземпляр MemorySource.
func NewMemorySource(data []byte) ports.DataSource {
	return &MemorySource{data: data}
}

// Fetch возвращает копию сообщения; пустое сообщение считается отсутствием ввода.
func (s *MemorySource) Fetch() ([]byte, error) {
	if len(s.data) == 0 {
		return nil, fmt.Errorf("empty message: %w", ErrNoInput)
	}
	return bytes.Clone(s.data), nil
}
