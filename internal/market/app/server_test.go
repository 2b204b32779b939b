package app

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"gomarketplace_sync/config"
	"gomarketplace_sync/config/values"
	"gomarketplace_sync/internal/core/models"
)

func testConfig(endpoint string) config.MarketConfig {
	return config.MarketConfig{
		Endpoint:          endpoint,
		PageLimit:         200,
		StockBatch:        2000,
		PriceBatch:        500,
		RequestsPerMinute: 6000,
		Values: values.MarketValues{
			CurrencyID: "RUR",
			StockType:  "FIT",
		},
	}
}

func TestMarketServerRunEndToEnd(t *testing.T) {
	var listCalls atomic.Int32
	var stockPayload, pricePayload map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/campaigns/101/offer-mapping-entries":
			listCalls.Add(1)
			w.Write([]byte(`{"result":{"offerMappingEntries":[{"offer":{"shopSku":"X"}},{"offer":{"shopSku":"Y"}},{"offer":{"shopSku":"Z"}}],"paging":{"nextPageToken":""}}}`))
		case "/campaigns/101/offers/stocks":
			if r.Method != http.MethodPut {
				t.Errorf("stocks method = %s", r.Method)
			}
			if err := json.NewDecoder(r.Body).Decode(&stockPayload); err != nil {
				t.Errorf("decode stocks: %v", err)
			}
			w.Write([]byte(`{"status":"OK"}`))
		case "/campaigns/101/offer-prices/updates":
			if err := json.NewDecoder(r.Body).Decode(&pricePayload); err != nil {
				t.Errorf("decode prices: %v", err)
			}
			w.Write([]byte(`{"status":"OK"}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))
	defer server.Close()

	creds := &config.MarketCredentials{
		Token: "token",
		Campaigns: []config.Campaign{
			{Label: "FBS", CampaignID: "101", WarehouseID: "777"},
		},
	}
	srv := NewMarketServer(creds, testConfig(server.URL), nil, false, io.Discard)
	srv.now = func() time.Time { return time.Date(2024, 5, 1, 7, 0, 0, 0, time.UTC) }

	remnants := []models.StockRow{{Code: "X", Quantity: ">10", Price: "5'990.00 руб."}}
	srv.Run(context.Background(), remnants)

	// Совпавший товар получает остаток 100, не представленные в выгрузке
	// товары обнуляются. Все записи несут общую метку времени и склад кампании.
	item := func(count int) []interface{} {
		return []interface{}{map[string]interface{}{
			"count":     float64(count),
			"type":      "FIT",
			"updatedAt": "2024-05-01T07:00:00Z",
		}}
	}
	wantStocks := map[string]interface{}{
		"skus": []interface{}{
			map[string]interface{}{"sku": "X", "warehouseId": "777", "items": item(100)},
			map[string]interface{}{"sku": "Y", "warehouseId": "777", "items": item(0)},
			map[string]interface{}{"sku": "Z", "warehouseId": "777", "items": item(0)},
		},
	}
	if !reflect.DeepEqual(stockPayload, wantStocks) {
		t.Errorf("stocks payload = %v, want %v", stockPayload, wantStocks)
	}

	wantPrices := map[string]interface{}{
		"offers": []interface{}{
			map[string]interface{}{
				"id": "X",
				"price": map[string]interface{}{
					"value":      float64(5990),
					"currencyId": "RUR",
				},
			},
		},
	}
	if !reflect.DeepEqual(pricePayload, wantPrices) {
		t.Errorf("prices payload = %v, want %v", pricePayload, wantPrices)
	}

	// Каждая фаза выгружает ассортимент заново.
	if got := listCalls.Load(); got != 2 {
		t.Errorf("offer mapping calls = %d, want 2", got)
	}
}

func TestMarketServerRunsEveryCampaign(t *testing.T) {
	warehouses := make(map[string]string)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.HasSuffix(r.URL.Path, "/offer-mapping-entries"):
			w.Write([]byte(`{"result":{"offerMappingEntries":[{"offer":{"shopSku":"X"}}],"paging":{"nextPageToken":""}}}`))
		case strings.HasSuffix(r.URL.Path, "/offers/stocks"):
			var payload map[string][]map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
				t.Errorf("decode stocks: %v", err)
			}
			warehouseID, _ := payload["skus"][0]["warehouseId"].(string)
			warehouses[r.URL.Path] = warehouseID
			w.Write([]byte(`{"status":"OK"}`))
		default:
			w.Write([]byte(`{"status":"OK"}`))
		}
	}))
	defer server.Close()

	creds := &config.MarketCredentials{
		Token: "token",
		Campaigns: []config.Campaign{
			{Label: "FBS", CampaignID: "101", WarehouseID: "777"},
			{Label: "DBS", CampaignID: "202", WarehouseID: "888"},
		},
	}
	srv := NewMarketServer(creds, testConfig(server.URL), nil, false, io.Discard)

	srv.Run(context.Background(), []models.StockRow{{Code: "X", Quantity: "3", Price: "100"}})

	// Каждая кампания выгружает остатки на собственный склад.
	want := map[string]string{
		"/campaigns/101/offers/stocks": "777",
		"/campaigns/202/offers/stocks": "888",
	}
	if !reflect.DeepEqual(warehouses, want) {
		t.Errorf("warehouses = %v, want %v", warehouses, want)
	}
}

func TestMarketServerCampaignFailureDoesNotStopOthers(t *testing.T) {
	var secondCampaignUploads atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/campaigns/101/") {
			http.Error(w, "unavailable", http.StatusServiceUnavailable)
			return
		}
		if strings.HasSuffix(r.URL.Path, "/offer-mapping-entries") {
			w.Write([]byte(`{"result":{"offerMappingEntries":[{"offer":{"shopSku":"X"}}],"paging":{"nextPageToken":""}}}`))
			return
		}
		secondCampaignUploads.Add(1)
		w.Write([]byte(`{"status":"OK"}`))
	}))
	defer server.Close()

	creds := &config.MarketCredentials{
		Token: "token",
		Campaigns: []config.Campaign{
			{Label: "FBS", CampaignID: "101", WarehouseID: "777"},
			{Label: "DBS", CampaignID: "202", WarehouseID: "888"},
		},
	}
	srv := NewMarketServer(creds, testConfig(server.URL), nil, false, io.Discard)

	srv.Run(context.Background(), []models.StockRow{{Code: "X", Quantity: "1", Price: "100"}})

	// Прогон DBS состоялся несмотря на отказ FBS: остатки и цены отправлены.
	if got := secondCampaignUploads.Load(); got != 2 {
		t.Errorf("second campaign uploads = %d, want 2", got)
	}
}
