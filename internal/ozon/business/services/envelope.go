package services

import (
	"gomarketplace_sync/config/values"
	"gomarketplace_sync/internal/core/models"
	"gomarketplace_sync/internal/ozon/business/models/dto/request"
)

// BuildStockRecords оборачивает назначения остатков в формат import/stocks.
func BuildStockRecords(assignments []models.StockAssignment) []request.StockRecord {
	records := make([]request.StockRecord, 0, len(assignments))
	for _, a := range assignments {
		records = append(records, request.StockRecord{
			OfferID: a.Code,
			Stock:   a.Stock,
		})
	}
	return records
}

// BuildPriceRecords оборачивает цены в формат import/prices, дополняя каждую
// запись константами конверта из конфигурации.
func BuildPriceRecords(assignments []models.PriceAssignment, vals values.OzonValues) []request.PriceRecord {
	records := make([]request.PriceRecord, 0, len(assignments))
	for _, a := range assignments {
		records = append(records, request.PriceRecord{
			AutoActionEnabled: vals.AutoAction,
			CurrencyCode:      vals.CurrencyCode,
			OfferID:           a.Code,
			OldPrice:          vals.OldPrice,
			Price:             a.Price,
		})
	}
	return records
}
