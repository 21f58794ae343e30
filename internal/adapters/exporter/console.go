package exporter

import (
	"fmt"
	"io"
	"os"

	"discord-speakable/internal/domain"
	"discord-speakable/internal/ports"
)

// ConsoleExporter реализует интерфейс Exporter для построчного вывода реплик.
type ConsoleExporter struct {
	w io.Writer
}

// NewConsoleExporter создает экспортер, пишущий в w; nil означает os.Stdout.
func NewConsoleExporter(w io.Writer) ports.Exporter {
	if w == nil {
		w = os.Stdout
	}
	return &ConsoleExporter{w: w}
}

// Export выводит реплику в виде "автор: текст" или одного текста без автора.
func (e *ConsoleExporter) Export(u domain.Utterance) error {
	var err error
	if u.Author != "" {
		_, err = fmt.Fprintf(e.w, "%s: %s\n", u.Author, u.Text)
	} else {
		_, err = fmt.Fprintln(e.w, u.Text)
	}
	if err != nil {
		return fmt.Errorf("failed to write utterance: %w", err)
	}
	return nil
}
