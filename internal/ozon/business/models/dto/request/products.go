package request

/*
Фильтр выборки товаров. Visibility "ALL" возвращает весь ассортимент,
включая скрытые и архивные карточки.
*/
type Filter struct {
	Visibility string `json:"visibility"`
}

// ProductListRequest — постраничный запрос списка товаров /v2/product/list.
// LastID пустой на первой странице, дальше берётся из ответа.
type ProductListRequest struct {
	Filter Filter `json:"filter"`
	LastID string `json:"last_id"`
	Limit  int    `json:"limit"`
}
