package services

import (
	"fmt"

	"gomarketplace_sync/internal/core/models"
)

// BuildStockAssignments сопоставляет строки выгрузки с ассортиментом
// маркетплейса. Совпавший код получает остаток из выгрузки и исключается из
// набора, после прохода все оставшиеся в наборе товары обнуляются.
// Каждый товар площадки получает ровно одно назначение.
func BuildStockAssignments(rows []models.StockRow, offers *OfferSet) ([]models.StockAssignment, error) {
	assignments := make([]models.StockAssignment, 0, offers.Len())
	for _, row := range rows {
		if !offers.Contains(row.Code) {
			continue
		}
		stock, err := ResolveQuantity(row.Quantity)
		if err != nil {
			return nil, fmt.Errorf("row %q: %w", row.Code, err)
		}
		assignments = append(assignments, models.StockAssignment{Code: row.Code, Stock: stock})
		offers.Remove(row.Code)
	}
	for _, id := range offers.Remaining() {
		assignments = append(assignments, models.StockAssignment{Code: id, Stock: 0})
	}
	return assignments, nil
}

// BuildPriceAssignments отбирает цены для товаров, присутствующих на
// маркетплейсе. Набор не расходуется: проверяется только принадлежность,
// товары без строки в выгрузке цен не получают.
func BuildPriceAssignments(rows []models.StockRow, offers *OfferSet) ([]models.PriceAssignment, error) {
	assignments := make([]models.PriceAssignment, 0, len(rows))
	for _, row := range rows {
		if !offers.Contains(row.Code) {
			continue
		}
		price, err := NormalizePrice(row.Price)
		if err != nil {
			return nil, fmt.Errorf("row %q: %w", row.Code, err)
		}
		assignments = append(assignments, models.PriceAssignment{Code: row.Code, Price: price})
	}
	return assignments, nil
}
