package update

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"gomarketplace_sync/internal/market/business/services"
	"gomarketplace_sync/metrics"
)

// sendJSON выполняет запрос с телом JSON и возвращает декодированный ответ.
// Маркет принимает остатки через PUT, а цены через POST, поэтому метод
// передаётся снаружи. Ошибкой считается только статус, отличный от 200.
func sendJSON(ctx context.Context, auth services.AuthEngine, limiter *rate.Limiter, method, url, path string, body interface{}) (map[string]interface{}, error) {
	if err := limiter.Wait(ctx); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: 60 * time.Second}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	auth.SetAuth(req)

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	metrics.RecordAPIRequest("market", path, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %s", resp.Status)
	}

	var decoded map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}
