package get

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"gomarketplace_sync/internal/ozon/business/models/dto/request"
	"gomarketplace_sync/internal/ozon/business/models/dto/response"
	"gomarketplace_sync/internal/ozon/business/services"
	"gomarketplace_sync/metrics"
)

const productListPath = "/v2/product/list"

const visibilityAll = "ALL"

// ProductListService постранично выгружает ассортимент продавца.
type ProductListService struct {
	services.AuthEngine
	endpoint    string
	pageLimit   int
	rateLimiter *rate.Limiter
}

func NewProductListService(auth services.AuthEngine, endpoint string, pageLimit int, limiter *rate.Limiter) *ProductListService {
	return &ProductListService{
		AuthEngine:  auth,
		endpoint:    endpoint,
		pageLimit:   pageLimit,
		rateLimiter: limiter,
	}
}

// OfferIDs собирает offer_id всего ассортимента. Выгрузка завершается, когда
// накоплено result.total позиций. Пустая страница раньше этого момента
// означает рассинхронизацию курсора и прерывает выгрузку.
func (s *ProductListService) OfferIDs(ctx context.Context) ([]string, error) {
	var offerIDs []string
	lastID := ""
	for {
		page, err := s.page(ctx, lastID)
		if err != nil {
			return nil, err
		}
		for _, item := range page.Result.Items {
			offerIDs = append(offerIDs, item.OfferID)
		}
		if len(offerIDs) >= page.Result.Total {
			return offerIDs, nil
		}
		if len(page.Result.Items) == 0 {
			return nil, fmt.Errorf("product list stalled at %d of %d items", len(offerIDs), page.Result.Total)
		}
		lastID = page.Result.LastID
	}
}

func (s *ProductListService) page(ctx context.Context, lastID string) (*response.ProductListResponse, error) {
	if err := s.rateLimiter.Wait(ctx); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(request.ProductListRequest{
		Filter: request.Filter{Visibility: visibilityAll},
		LastID: lastID,
		Limit:  s.pageLimit,
	})
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: 20 * time.Second}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+productListPath, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	s.SetAuth(req)

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	metrics.RecordAPIRequest("ozon", productListPath, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %s", resp.Status)
	}

	var productList response.ProductListResponse
	if err := json.NewDecoder(resp.Body).Decode(&productList); err != nil {
		return nil, err
	}
	return &productList, nil
}
