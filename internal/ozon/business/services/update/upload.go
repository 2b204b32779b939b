package update

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"

	"gomarketplace_sync/internal/ozon/business/services"
	"gomarketplace_sync/metrics"
)

// postJSON выполняет POST с авторизацией и возвращает декодированное тело
// ответа. Ответы import-методов Ozon не проверяются по содержимому:
// ошибкой считается только статус, отличный от 200.
func postJSON(ctx context.Context, auth services.AuthEngine, limiter *rate.Limiter, url, path string, body interface{}) (map[string]interface{}, error) {
	if err := limiter.Wait(ctx); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: 60 * time.Second}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
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
	metrics.RecordAPIRequest("ozon", path, resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %s", resp.Status)
	}

	var decoded map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}
	return decoded, nil
}
