package config

import (
	"fmt"
	"os"
	"strings"
)

// PostgresConfig описывает подключение к Postgres для журнала прогонов.
// Журнал опционален: без POSTGRES_HOST приложение работает без него.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

func GetPostgresConfig() *PostgresConfig {
	return &PostgresConfig{
		Host:     getEnv("POSTGRES_HOST", ""),
		Port:     getEnv("POSTGRES_PORT", "5432"),
		User:     getEnv("POSTGRES_USER", "postgres"),
		Password: getEnv("POSTGRES_PASSWORD", "postgres"),
		DBName:   getEnv("POSTGRES_NAME", "postgres"),
	}
}

func (pc *PostgresConfig) Enabled() bool {
	return pc.Host != ""
}

func (pc *PostgresConfig) GetConnectionString() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		pc.Host, pc.Port, pc.User, pc.Password, pc.DBName)
}

// SellerCredentials — доступ к Ozon Seller API.
type SellerCredentials struct {
	ClientID string
	ApiKey   string
}

func GetSellerCredentials() *SellerCredentials {
	return &SellerCredentials{
		ClientID: getEnv("CLIENT_ID", ""),
		ApiKey:   getEnv("SELLER_TOKEN", ""),
	}
}

func (c *SellerCredentials) Valid() bool {
	return c.ClientID != "" && c.ApiKey != ""
}

// Campaign — кампания Яндекс.Маркета и её склад.
type Campaign struct {
	Label       string
	CampaignID  string
	WarehouseID string
}

// MarketCredentials — доступ к Яндекс.Маркету. Кампании FBS и DBS
// настраиваются независимо, отсутствующая кампания не синхронизируется.
type MarketCredentials struct {
	Token     string
	Campaigns []Campaign
}

func GetMarketCredentials() *MarketCredentials {
	creds := &MarketCredentials{Token: getEnv("MARKET_TOKEN", "")}
	if id := os.Getenv("FBS_ID"); id != "" {
		creds.Campaigns = append(creds.Campaigns, Campaign{
			Label:       "FBS",
			CampaignID:  id,
			WarehouseID: getEnv("WAREHOUSE_FBS_ID", ""),
		})
	}
	if id := os.Getenv("DBS_ID"); id != "" {
		creds.Campaigns = append(creds.Campaigns, Campaign{
			Label:       "DBS",
			CampaignID:  id,
			WarehouseID: getEnv("WAREHOUSE_DBS_ID", ""),
		})
	}
	return creds
}

func (c *MarketCredentials) Valid() bool {
	return c.Token != "" && len(c.Campaigns) > 0
}

// RuntimeConfig — переключатели запуска, не связанные с площадками.
type RuntimeConfig struct {
	ConfigPath  string // путь к yaml-конфигу, пусто = значения по умолчанию
	MetricsAddr string // адрес сервисного HTTP-листенера, пусто = выключен
	SyncEvery   string // период планировщика ("4h", "30m"), пусто = один прогон
	DryRun      bool   // сверка без отправки обновлений
}

func GetRuntimeConfig() *RuntimeConfig {
	return &RuntimeConfig{
		ConfigPath:  getEnv("CONFIG_PATH", ""),
		MetricsAddr: getEnv("METRICS_ADDR", ""),
		SyncEvery:   getEnv("SYNC_EVERY", ""),
		DryRun:      getEnvBool("DRY_RUN", false),
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	switch strings.ToLower(value) {
	case "1", "true", "yes":
		return true
	}
	return false
}
