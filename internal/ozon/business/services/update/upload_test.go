package update

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"

	"golang.org/x/time/rate"

	"gomarketplace_sync/internal/ozon/business/models/dto/request"
	"gomarketplace_sync/internal/ozon/business/services"
)

func TestImportStocksPayload(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/v1/product/import/stocks" {
			t.Errorf("%s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Api-Key"); got != "key" {
			t.Errorf("Api-Key = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Write([]byte(`{"result":[{"offer_id":"A","updated":true}]}`))
	}))
	defer server.Close()

	svc := NewStockUpdateService(services.NewApiKeyAuth("client", "key"), server.URL, rate.NewLimiter(rate.Inf, 1))

	records := []request.StockRecord{
		{OfferID: "A", Stock: 100},
		{OfferID: "B", Stock: 0},
	}
	resp, err := svc.ImportStocks(context.Background(), records)
	if err != nil {
		t.Fatalf("ImportStocks: %v", err)
	}
	if resp["result"] == nil {
		t.Error("response body not returned to caller")
	}

	want := map[string]interface{}{
		"stocks": []interface{}{
			map[string]interface{}{"offer_id": "A", "stock": float64(100)},
			map[string]interface{}{"offer_id": "B", "stock": float64(0)},
		},
	}
	if !reflect.DeepEqual(captured, want) {
		t.Errorf("payload = %v, want %v", captured, want)
	}
}

func TestImportPricesPayload(t *testing.T) {
	var captured map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/product/import/prices" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Errorf("decode: %v", err)
		}
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	svc := NewPriceUpdateService(services.NewApiKeyAuth("client", "key"), server.URL, rate.NewLimiter(rate.Inf, 1))

	records := []request.PriceRecord{{
		AutoActionEnabled: "UNKNOWN",
		CurrencyCode:      "RUB",
		OfferID:           "A",
		OldPrice:          "0",
		Price:             "5990",
	}}
	if _, err := svc.ImportPrices(context.Background(), records); err != nil {
		t.Fatalf("ImportPrices: %v", err)
	}

	want := map[string]interface{}{
		"prices": []interface{}{
			map[string]interface{}{
				"auto_action_enabled": "UNKNOWN",
				"currency_code":       "RUB",
				"offer_id":            "A",
				"old_price":           "0",
				"price":               "5990",
			},
		},
	}
	if !reflect.DeepEqual(captured, want) {
		t.Errorf("payload = %v, want %v", captured, want)
	}
}

func TestImportStocksServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "too many requests", http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := NewStockUpdateService(services.NewApiKeyAuth("client", "key"), server.URL, rate.NewLimiter(rate.Inf, 1))

	_, err := svc.ImportStocks(context.Background(), []request.StockRecord{{OfferID: "A", Stock: 1}})
	if err == nil || !strings.Contains(err.Error(), "unexpected status code") {
		t.Fatalf("expected status error, got %v", err)
	}
}
