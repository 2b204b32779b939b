package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig(\"\"): %v", err)
	}
	if cfg.Ozon.StockBatch != 100 || cfg.Ozon.PriceBatch != 900 {
		t.Errorf("ozon batches = %d/%d, want 100/900", cfg.Ozon.StockBatch, cfg.Ozon.PriceBatch)
	}
	if cfg.Market.StockBatch != 2000 || cfg.Market.PriceBatch != 500 {
		t.Errorf("market batches = %d/%d, want 2000/500", cfg.Market.StockBatch, cfg.Market.PriceBatch)
	}
	if cfg.Stock.HeaderOffset != 17 {
		t.Errorf("header offset = %d, want 17", cfg.Stock.HeaderOffset)
	}
	if cfg.Ozon.Values.CurrencyCode != "RUB" || cfg.Market.Values.CurrencyID != "RUR" {
		t.Errorf("currency defaults = %q/%q", cfg.Ozon.Values.CurrencyCode, cfg.Market.Values.CurrencyID)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	raw := `
stock:
  url: "http://localhost:9000/ostatki.zip"
  header-offset: 3
ozon:
  stock-batch: 10
market:
  default_values:
    stock-type: "DEFECT"
`
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Stock.URL != "http://localhost:9000/ostatki.zip" {
		t.Errorf("stock url = %q", cfg.Stock.URL)
	}
	if cfg.Stock.HeaderOffset != 3 {
		t.Errorf("header offset = %d, want 3", cfg.Stock.HeaderOffset)
	}
	if cfg.Ozon.StockBatch != 10 {
		t.Errorf("ozon stock batch = %d, want 10", cfg.Ozon.StockBatch)
	}
	if cfg.Market.Values.StockType != "DEFECT" {
		t.Errorf("market stock type = %q, want DEFECT", cfg.Market.Values.StockType)
	}
	// Незатронутые поля сохраняют значения по умолчанию.
	if cfg.Ozon.Endpoint != "https://api-seller.ozon.ru" {
		t.Errorf("ozon endpoint = %q", cfg.Ozon.Endpoint)
	}
	if cfg.Market.PageLimit != 200 {
		t.Errorf("market page limit = %d, want 200", cfg.Market.PageLimit)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestGetMarketCredentials(t *testing.T) {
	t.Setenv("MARKET_TOKEN", "token")
	t.Setenv("FBS_ID", "111")
	t.Setenv("WAREHOUSE_FBS_ID", "501")
	t.Setenv("DBS_ID", "")
	t.Setenv("WAREHOUSE_DBS_ID", "")

	creds := GetMarketCredentials()
	if !creds.Valid() {
		t.Fatal("credentials with a token and one campaign must be valid")
	}
	if len(creds.Campaigns) != 1 {
		t.Fatalf("campaigns = %d, want 1", len(creds.Campaigns))
	}
	c := creds.Campaigns[0]
	if c.Label != "FBS" || c.CampaignID != "111" || c.WarehouseID != "501" {
		t.Errorf("campaign = %+v", c)
	}
}
