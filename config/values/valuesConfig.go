package values

// OzonValues — константы конверта запросов Ozon Seller API.
// UNKNOWN в auto-action оставляет автоакции как есть, old-price "0"
// убирает зачёркнутую цену.
type OzonValues struct {
	CurrencyCode string `yaml:"currency-code"`
	AutoAction   string `yaml:"auto-action"`
	OldPrice     string `yaml:"old-price"`
}

// MarketValues — константы конверта запросов Яндекс.Маркета.
// Тип остатка FIT означает годный к продаже товар.
type MarketValues struct {
	CurrencyID string `yaml:"currency-id"`
	StockType  string `yaml:"stock-type"`
}
