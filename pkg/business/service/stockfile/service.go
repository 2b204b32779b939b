package stockfile

import (
	"context"
	"fmt"
	"io"
	"os"

	"gomarketplace_sync/config"
	"gomarketplace_sync/internal/core/models"
	"gomarketplace_sync/pkg/logger"
)

// StockService скачивает архив остатков, распаковывает его в рабочий
// каталог, разбирает выгрузку и удаляет распакованный файл.
type StockService struct {
	fetcher   Fetcher
	processor *Processor
	source    config.StockSourceConfig
	workDir   string
	log       logger.Logger
}

func NewStockService(fetcher Fetcher, source config.StockSourceConfig, workDir string, log logger.Logger) *StockService {
	return &StockService{
		fetcher:   fetcher,
		processor: NewProcessor(source.HeaderOffset),
		source:    source,
		workDir:   workDir,
		log:       log,
	}
}

// Remnants возвращает строки актуальной выгрузки остатков поставщика.
func (s *StockService) Remnants(ctx context.Context) ([]models.StockRow, error) {
	body, err := s.fetcher.Fetch(ctx, s.source.URL)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", s.source.URL, err)
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", s.source.URL, err)
	}

	path, err := ExtractEntry(data, s.source.Entry, s.workDir)
	if err != nil {
		return nil, err
	}
	defer os.Remove(path) // файл нужен только на время разбора

	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	rows, err := s.processor.ProcessCSV(file)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", s.source.Entry, err)
	}
	s.log.Log("Загружено %d строк остатков из %s", len(rows), s.source.Entry)
	return rows, nil
}
