package update

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"

	"gomarketplace_sync/internal/market/business/models/dto/request"
	"gomarketplace_sync/internal/market/business/services"
)

const updateStocksPath = "offers/stocks"

// StockUpdateService загружает остатки кампании партиями.
type StockUpdateService struct {
	services.AuthEngine
	endpoint    string
	campaignID  string
	rateLimiter *rate.Limiter
}

func NewStockUpdateService(auth services.AuthEngine, endpoint, campaignID string, limiter *rate.Limiter) *StockUpdateService {
	return &StockUpdateService{
		AuthEngine:  auth,
		endpoint:    endpoint,
		campaignID:  campaignID,
		rateLimiter: limiter,
	}
}

// UpdateStocks отправляет одну партию остатков.
func (s *StockUpdateService) UpdateStocks(ctx context.Context, records []request.StockRecord) (map[string]interface{}, error) {
	body := request.UpdateStocksRequest{Skus: records}
	url := fmt.Sprintf("%s/campaigns/%s/%s", s.endpoint, s.campaignID, updateStocksPath)
	return sendJSON(ctx, s.AuthEngine, s.rateLimiter, http.MethodPut, url, updateStocksPath, body)
}
