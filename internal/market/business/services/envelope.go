package services

import (
	"fmt"
	"strconv"
	"time"

	"gomarketplace_sync/config/values"
	"gomarketplace_sync/internal/core/models"
	"gomarketplace_sync/internal/market/business/models/dto/request"
)

// BuildStockRecords оборачивает назначения остатков в формат offers/stocks.
// Момент измерения общий для всей выгрузки и округляется до секунды,
// иначе API отвергает метку времени.
func BuildStockRecords(assignments []models.StockAssignment, warehouseID string, vals values.MarketValues, now time.Time) []request.StockRecord {
	updatedAt := now.UTC().Truncate(time.Second).Format(time.RFC3339)
	records := make([]request.StockRecord, 0, len(assignments))
	for _, a := range assignments {
		records = append(records, request.StockRecord{
			Sku:         a.Code,
			WarehouseID: warehouseID,
			Items: []request.StockItem{{
				Count:     a.Stock,
				Type:      vals.StockType,
				UpdatedAt: updatedAt,
			}},
		})
	}
	return records
}

// BuildPriceRecords оборачивает цены в формат offer-prices/updates.
// Маркет принимает цену целым числом.
func BuildPriceRecords(assignments []models.PriceAssignment, vals values.MarketValues) ([]request.PriceRecord, error) {
	records := make([]request.PriceRecord, 0, len(assignments))
	for _, a := range assignments {
		value, err := strconv.Atoi(a.Price)
		if err != nil {
			return nil, fmt.Errorf("price %q of %s is not an integer: %w", a.Price, a.Code, err)
		}
		records = append(records, request.PriceRecord{
			ID: a.Code,
			Price: request.PriceValue{
				Value:      value,
				CurrencyID: vals.CurrencyID,
			},
		})
	}
	return records, nil
}
