package update

import (
	"context"

	"golang.org/x/time/rate"

	"gomarketplace_sync/internal/ozon/business/models/dto/request"
	"gomarketplace_sync/internal/ozon/business/services"
)

const importStocksPath = "/v1/product/import/stocks"

// StockUpdateService загружает остатки в Ozon партиями.
type StockUpdateService struct {
	services.AuthEngine
	endpoint    string
	rateLimiter *rate.Limiter
}

func NewStockUpdateService(auth services.AuthEngine, endpoint string, limiter *rate.Limiter) *StockUpdateService {
	return &StockUpdateService{
		AuthEngine:  auth,
		endpoint:    endpoint,
		rateLimiter: limiter,
	}
}

// ImportStocks отправляет одну партию остатков.
func (s *StockUpdateService) ImportStocks(ctx context.Context, records []request.StockRecord) (map[string]interface{}, error) {
	body := request.ImportStocksRequest{Stocks: records}
	return postJSON(ctx, s.AuthEngine, s.rateLimiter, s.endpoint+importStocksPath, importStocksPath, body)
}
