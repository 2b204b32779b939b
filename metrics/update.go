package metrics

import "sync/atomic"

// SyncMetrics — счётчики одного прогона синхронизации.
// NonEmptyStocks считает записи с ненулевым остатком, чтобы итоговый лог
// показывал, сколько товаров реально доступно к продаже.
type SyncMetrics struct {
	OffersListed    atomic.Int32
	StocksSubmitted atomic.Int32
	PricesSubmitted atomic.Int32
	NonEmptyStocks  atomic.Int32
	BatchesSent     atomic.Int32
}
