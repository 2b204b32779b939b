package get

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"gomarketplace_sync/internal/market/business/models/dto/response"
	"gomarketplace_sync/internal/market/business/services"
	"gomarketplace_sync/metrics"
)

const offerMappingPath = "offer-mapping-entries"

// OfferMappingService постранично выгружает привязки предложений кампании.
type OfferMappingService struct {
	services.AuthEngine
	endpoint    string
	campaignID  string
	pageLimit   int
	rateLimiter *rate.Limiter
}

func NewOfferMappingService(auth services.AuthEngine, endpoint, campaignID string, pageLimit int, limiter *rate.Limiter) *OfferMappingService {
	return &OfferMappingService{
		AuthEngine:  auth,
		endpoint:    endpoint,
		campaignID:  campaignID,
		pageLimit:   pageLimit,
		rateLimiter: limiter,
	}
}

// ShopSkus собирает shopSku всех предложений кампании. Пустой nextPageToken
// означает последнюю страницу.
func (s *OfferMappingService) ShopSkus(ctx context.Context) ([]string, error) {
	var skus []string
	pageToken := ""
	for {
		page, err := s.page(ctx, pageToken)
		if err != nil {
			return nil, err
		}
		for _, entry := range page.Result.OfferMappingEntries {
			skus = append(skus, entry.Offer.ShopSku)
		}
		pageToken = page.Result.Paging.NextPageToken
		if pageToken == "" {
			return skus, nil
		}
	}
}

func (s *OfferMappingService) page(ctx context.Context, pageToken string) (*response.OfferMappingsResponse, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	requestURL := fmt.Sprintf("%s/campaigns/%s/%s?limit=%d", s.endpoint, s.campaignID, offerMappingPath, s.pageLimit)
	if pageToken != "" {
		requestURL = fmt.Sprintf("%s&page_token=%s", requestURL, url.QueryEscape(pageToken))
	}

	client := &http.Client{Timeout: 20 * time.Second}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, err
	}
	s.SetAuth(req)

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	metrics.RecordAPIRequest("market", offerMappingPath, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %s", resp.Status)
	}

	var mappings response.OfferMappingsResponse
	if err := json.NewDecoder(resp.Body).Decode(&mappings); err != nil {
		return nil, err
	}
	return &mappings, nil
}
