package config

import (
	"gopkg.in/yaml.v3"
	"os"

	"gomarketplace_sync/config/values"
)

// StockSourceConfig — откуда и как забирать файл остатков поставщика.
type StockSourceConfig struct {
	URL          string `yaml:"url"`
	Entry        string `yaml:"entry"`
	HeaderOffset int    `yaml:"header-offset"`
}

// OzonConfig — параметры обмена с Ozon Seller API.
type OzonConfig struct {
	Endpoint          string           `yaml:"endpoint"`
	PageLimit         int              `yaml:"page-limit"`
	StockBatch        int              `yaml:"stock-batch"`
	PriceBatch        int              `yaml:"price-batch"` // API принимает до 1000 цен за запрос
	RequestsPerMinute int              `yaml:"requests-per-minute"`
	Values            values.OzonValues `yaml:"default_values"`
}

// MarketConfig — параметры обмена с API Яндекс.Маркета.
type MarketConfig struct {
	Endpoint          string             `yaml:"endpoint"`
	PageLimit         int                `yaml:"page-limit"`
	StockBatch        int                `yaml:"stock-batch"`
	PriceBatch        int                `yaml:"price-batch"`
	RequestsPerMinute int                `yaml:"requests-per-minute"`
	Values            values.MarketValues `yaml:"default_values"`
}

type AppConfig struct {
	Stock  StockSourceConfig `yaml:"stock"`
	Ozon   OzonConfig        `yaml:"ozon"`
	Market MarketConfig      `yaml:"market"`
}

// DefaultAppConfig возвращает конфигурацию с рабочими значениями обмена.
// Размеры батчей и лимиты страниц соответствуют ограничениям площадок.
func DefaultAppConfig() *AppConfig {
	return &AppConfig{
		Stock: StockSourceConfig{
			URL:          "https://timeworld.ru/upload/files/ostatki.zip",
			Entry:        "ostatki.csv",
			HeaderOffset: 17,
		},
		Ozon: OzonConfig{
			Endpoint:          "https://api-seller.ozon.ru",
			PageLimit:         1000,
			StockBatch:        100,
			PriceBatch:        900,
			RequestsPerMinute: 120,
			Values: values.OzonValues{
				CurrencyCode: "RUB",
				AutoAction:   "UNKNOWN",
				OldPrice:     "0",
			},
		},
		Market: MarketConfig{
			Endpoint:          "https://api.partner.market.yandex.ru",
			PageLimit:         200,
			StockBatch:        2000,
			PriceBatch:        500,
			RequestsPerMinute: 120,
			Values: values.MarketValues{
				CurrencyID: "RUR",
				StockType:  "FIT",
			},
		},
	}
}

// LoadConfig читает yaml поверх значений по умолчанию.
// Пустое имя файла означает конфигурацию по умолчанию.
func LoadConfig(filename string) (*AppConfig, error) {
	config := DefaultAppConfig()
	if filename == "" {
		return config, nil
	}
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	decoder := yaml.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, err
	}
	return config, nil
}
