package request

// StockRecord — остаток одного товара для /v1/product/import/stocks.
type StockRecord struct {
	OfferID string `json:"offer_id"`
	Stock   int    `json:"stock"`
}

type ImportStocksRequest struct {
	Stocks []StockRecord `json:"stocks"`
}

/*
PriceRecord — цена одного товара для /v1/product/import/prices.
OldPrice "0" убирает зачёркнутую цену, AutoActionEnabled UNKNOWN
не меняет участие товара в автоакциях.
*/
type PriceRecord struct {
	AutoActionEnabled string `json:"auto_action_enabled"`
	CurrencyCode      string `json:"currency_code"`
	OfferID           string `json:"offer_id"`
	OldPrice          string `json:"old_price"`
	Price             string `json:"price"`
}

type ImportPricesRequest struct {
	Prices []PriceRecord `json:"prices"`
}
