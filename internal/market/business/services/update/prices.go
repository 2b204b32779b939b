package update

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/time/rate"

	"gomarketplace_sync/internal/market/business/models/dto/request"
	"gomarketplace_sync/internal/market/business/services"
)

const updatePricesPath = "offer-prices/updates"

// PriceUpdateService загружает цены кампании партиями.
type PriceUpdateService struct {
	services.AuthEngine
	endpoint    string
	campaignID  string
	rateLimiter *rate.Limiter
}

func NewPriceUpdateService(auth services.AuthEngine, endpoint, campaignID string, limiter *rate.Limiter) *PriceUpdateService {
	return &PriceUpdateService{
		AuthEngine:  auth,
		endpoint:    endpoint,
		campaignID:  campaignID,
		rateLimiter: limiter,
	}
}

// UpdatePrices отправляет одну партию цен.
func (s *PriceUpdateService) UpdatePrices(ctx context.Context, records []request.PriceRecord) (map[string]interface{}, error) {
	body := request.UpdatePricesRequest{Offers: records}
	url := fmt.Sprintf("%s/campaigns/%s/%s", s.endpoint, s.campaignID, updatePricesPath)
	return sendJSON(ctx, s.AuthEngine, s.rateLimiter, http.MethodPost, url, updatePricesPath, body)
}
