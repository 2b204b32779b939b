package update

import (
	"context"

	"golang.org/x/time/rate"

	"gomarketplace_sync/internal/ozon/business/models/dto/request"
	"gomarketplace_sync/internal/ozon/business/services"
)

const importPricesPath = "/v1/product/import/prices"

// PriceUpdateService загружает цены в Ozon партиями.
type PriceUpdateService struct {
	services.AuthEngine
	endpoint    string
	rateLimiter *rate.Limiter
}

func NewPriceUpdateService(auth services.AuthEngine, endpoint string, limiter *rate.Limiter) *PriceUpdateService {
	return &PriceUpdateService{
		AuthEngine:  auth,
		endpoint:    endpoint,
		rateLimiter: limiter,
	}
}

// ImportPrices отправляет одну партию цен.
func (s *PriceUpdateService) ImportPrices(ctx context.Context, records []request.PriceRecord) (map[string]interface{}, error) {
	body := request.ImportPricesRequest{Prices: records}
	return postJSON(ctx, s.AuthEngine, s.rateLimiter, s.endpoint+importPricesPath, importPricesPath, body)
}
