package exporter

import (
	"fmt"
	"sync"

	"github.com/mattn/go-runewidth"
	"github.com/xuri/excelize/v2"

	"discord-speakable/internal/domain"
	"discord-speakable/internal/ports"
)

// TranscriptSheet — имя листа со стенограммой.
const TranscriptSheet = "Стенограмма"

// maxColumnWidth ограничивает ширину колонки в символах.
const maxColumnWidth = 80

var transcriptHeaders = []string{"ID сервера", "ID канала", "ID сообщения", "Автор", "Текст"}

// ExcelExporter накапливает реплики в книге Excel и сохраняет ее при Close.
type ExcelExporter struct {
	path   string
	file   *excelize.File
	row    int
	widths []int
	mutex  sync.Mutex
}

var _ ports.Exporter = (*ExcelExporter)(nil)

// NewExcelExporter создает экспортер стенограммы в файл path.
func NewExcelExporter(path string) (*ExcelExporter, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", TranscriptSheet); err != nil {
		return nil, fmt.Errorf("failed to create transcript sheet: %w", err)
	}

	e := &ExcelExporter{
		path:   path,
		file:   f,
		row:    1,
		widths: make([]int, len(transcriptHeaders)),
	}
	if err := e.writeRow(transcriptHeaders); err != nil {
		return nil, err
	}
	return e, nil
}

// Export добавляет реплику строкой в стенограмму.
func (e *ExcelExporter) Export(u domain.Utterance) error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	return e.writeRow([]string{u.GuildID, u.ChannelID, u.MessageID, u.Author, u.Text})
}

// Rows возвращает число записанных реплик.
func (e *ExcelExporter) Rows() int {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	return e.row - 2
}

// Close подбирает ширину колонок, сохраняет книгу и освобождает ресурсы.
func (e *ExcelExporter) Close() error {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	defer e.file.Close()

	for i, w := range e.widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("failed to resolve column name: %w", err)
		}
		if err := e.file.SetColWidth(TranscriptSheet, col, col, float64(min(w+2, maxColumnWidth))); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}

	if err := e.file.SaveAs(e.path); err != nil {
		return fmt.Errorf("failed to save transcript %s: %w", e.path, err)
	}
	return nil
}

func (e *ExcelExporter) writeRow(values []string) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, e.row)
		if err != nil {
			return fmt.Errorf("failed to resolve cell: %w", err)
		}
		if err := e.file.SetCellValue(TranscriptSheet, cell, v); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
		// Ширина по числу знакомест: символы CJK занимают два.
		if w := runewidth.StringWidth(v); w > e.widths[i] {
			e.widths[i] = w
		}
	}
	e.row++
	return nil
}
