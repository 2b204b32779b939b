package stockfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"gomarketplace_sync/internal/core/models"
)

const (
	codeColumn     = "Код"
	quantityColumn = "Количество"
	priceColumn    = "Цена"
)

// Processor читает выгрузку остатков: CSV с разделителем ';' в Windows-1251.
// Первые headerOffset строк занимает шапка поставщика, за ними идёт строка
// с именами колонок.
type Processor struct {
	headerOffset int
}

func NewProcessor(headerOffset int) *Processor {
	return &Processor{headerOffset: headerOffset}
}

// ProcessCSV декодирует файл из Windows-1251 и собирает строки выгрузки.
// Колонки "Код" и "Количество" обязательны, "Цена" может отсутствовать
// в выгрузках без цен. Строки без кода пропускаются.
func (p *Processor) ProcessCSV(reader io.Reader) ([]models.StockRow, error) {
	decoder := transform.NewReader(reader, charmap.Windows1251.NewDecoder())
	csvReader := csv.NewReader(decoder)
	csvReader.Comma = ';'
	csvReader.LazyQuotes = true
	csvReader.FieldsPerRecord = -1

	allRows, err := csvReader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv read error: %w", err)
	}
	if len(allRows) <= p.headerOffset {
		return nil, fmt.Errorf("file has %d rows, header expected at row %d", len(allRows), p.headerOffset+1)
	}

	header := allRows[p.headerOffset]
	columnMap := make(map[string]int)
	for i, col := range header {
		columnMap[strings.TrimSpace(col)] = i
	}

	codeIdx, ok := columnMap[codeColumn]
	if !ok {
		return nil, fmt.Errorf("column %q not found in header", codeColumn)
	}
	qtyIdx, ok := columnMap[quantityColumn]
	if !ok {
		return nil, fmt.Errorf("column %q not found in header", quantityColumn)
	}
	priceIdx, hasPrice := columnMap[priceColumn]

	var rows []models.StockRow
	for _, record := range allRows[p.headerOffset+1:] {
		var row models.StockRow
		if codeIdx < len(record) {
			row.Code = strings.TrimSpace(record[codeIdx])
		}
		if row.Code == "" {
			continue
		}
		if qtyIdx < len(record) {
			row.Quantity = strings.TrimSpace(record[qtyIdx])
		}
		if hasPrice && priceIdx < len(record) {
			row.Price = strings.TrimSpace(record[priceIdx])
		}
		rows = append(rows, row)
	}
	return rows, nil
}
