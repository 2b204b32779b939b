package response

// OfferMapping — привязка предложения магазина к карточке маркета.
// Из всего ответа синхронизации нужен только shopSku.
type OfferMapping struct {
	ShopSku string `json:"shopSku"`
}

type OfferMappingEntry struct {
	Offer OfferMapping `json:"offer"`
}

// Paging — курсор постраничной выгрузки. Пустой nextPageToken означает
// последнюю страницу.
type Paging struct {
	NextPageToken string `json:"nextPageToken"`
}

type OfferMappingsResult struct {
	OfferMappingEntries []OfferMappingEntry `json:"offerMappingEntries"`
	Paging              Paging              `json:"paging"`
}

type OfferMappingsResponse struct {
	Result OfferMappingsResult `json:"result"`
}
