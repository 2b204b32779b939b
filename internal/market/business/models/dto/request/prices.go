package request

// PriceValue — значение цены в валюте кампании. Value целочисленный,
// копейки API не принимает.
type PriceValue struct {
	Value      int    `json:"value"`
	CurrencyID string `json:"currencyId"`
}

// PriceRecord — новая цена одного предложения для offer-prices/updates.
type PriceRecord struct {
	ID    string     `json:"id"`
	Price PriceValue `json:"price"`
}

type UpdatePricesRequest struct {
	Offers []PriceRecord `json:"offers"`
}
