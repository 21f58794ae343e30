package exporter

import (
	"errors"

	"discord-speakable/internal/domain"
	"discord-speakable/internal/ports"
)

// MultiExporter передает каждую реплику всем вложенным экспортерам.
type MultiExporter struct {
	exporters []ports.Exporter
}

// NewMultiExporter объединяет экспортеры; nil пропускаются.
func NewMultiExporter(exporters ...ports.Exporter) ports.Exporter {
	m := &MultiExporter{}
	for _, e := range exporters {
		if e != nil {
			m.exporters = append(m.exporters, e)
		}
	}
	return m
}

// Export вызывает все экспортеры и объединяет их ошибки.
func (m *MultiExporter) Export(u domain.Utterance) error {
	var errs []error
	for _, e := range m.exporters {
		if err := e.Export(u); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
