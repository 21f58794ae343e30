package source

import (
	"fmt"
	"io"

	"discord-speakable/internal/ports"
)

// DefaultReadLimit ограничивает объем, читаемый ReaderSource.
const DefaultReadLimit = 1 << 20

// ReaderSource читает данные из потока, например из стандартного ввода.
type ReaderSource struct {
	r     io.Reader
	limit int64
}

// NewReaderSource создает источник, читающий не более limit байт из r.
// Неположительный limit заменяется на DefaultReadLimit.
func NewReaderSource(r io.Reader, limit int64) ports.DataSource {
	if limit <= 0 {
		limit = DefaultReadLimit
	}
	return &ReaderSource{r: r, limit: limit}
}

// Fetch читает поток до конца или до предела.
func (s *ReaderSource) Fetch() ([]byte, error) {
	if s.r == nil {
		return nil, fmt.Errorf("reader not set: %w", ErrNoInput)
	}

	data, err := io.ReadAll(io.LimitReader(s.r, s.limit))
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("input is empty: %w", ErrNoInput)
	}

	return data, nil
}
