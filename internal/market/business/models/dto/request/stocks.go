package request

// StockItem — одно измерение остатка. Type FIT означает годный к продаже
// товар, UpdatedAt — момент измерения в RFC3339.
type StockItem struct {
	Count     int    `json:"count"`
	Type      string `json:"type"`
	UpdatedAt string `json:"updatedAt"`
}

// StockRecord — остатки одного SKU на складе. API ожидает идентификатор
// склада строкой.
type StockRecord struct {
	Sku         string      `json:"sku"`
	WarehouseID string      `json:"warehouseId"`
	Items       []StockItem `json:"items"`
}

type UpdateStocksRequest struct {
	Skus []StockRecord `json:"skus"`
}
