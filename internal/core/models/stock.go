package models

// StockRow представляет одну строку выгрузки остатков поставщика.
// Колонки исходного файла: "Код", "Количество", "Цена".
// Код совпадает с offer_id (Ozon) и shopSku (Яндекс.Маркет).
type StockRow struct {
	Code     string
	Quantity string
	Price    string
}

// StockAssignment — остаток, назначенный одному товару маркетплейса
// после сверки выгрузки с ассортиментом площадки.
type StockAssignment struct {
	Code  string
	Stock int
}

// PriceAssignment — нормализованная цена для одного товара маркетплейса.
// Price хранится строкой из цифр без дробной части, как того ждёт API.
type PriceAssignment struct {
	Code  string
	Price string
}
