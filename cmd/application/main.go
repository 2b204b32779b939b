package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/joho/godotenv"

	"gomarketplace_sync/config"
	services2 "gomarketplace_sync/internal/core/services"
	"gomarketplace_sync/internal/journal"
	marketapp "gomarketplace_sync/internal/market/app"
	"gomarketplace_sync/internal/ops"
	ozonapp "gomarketplace_sync/internal/ozon/app"
	journal2 "gomarketplace_sync/migrations/journal"
	"gomarketplace_sync/pkg/business/service/stockfile"
	"gomarketplace_sync/pkg/dbconnect"
	"gomarketplace_sync/pkg/dbconnect/migration"
	"gomarketplace_sync/pkg/dbconnect/postgres"
	"gomarketplace_sync/pkg/logger"
)

func main() {
	log.Printf("\nStarted app\n")

	// .env удобен при локальном запуске, в контейнере его обычно нет.
	_ = godotenv.Load()

	rt := config.GetRuntimeConfig()
	appCfg, err := config.LoadConfig(rt.ConfigPath)
	if err != nil {
		log.Fatalf("Не удалось прочитать конфигурацию: %s", err)
	}

	_log := logger.NewLogger(os.Stdout, "[Sync]")
	if rt.DryRun {
		_log.Log("Включён dry-run: обновления не отправляются")
	}

	journalRepo := setupJournal(_log)

	if rt.MetricsAddr != "" {
		opsServer := ops.NewServer(journalRepo, os.Stdout)
		go func() {
			if err := opsServer.ListenAndServe(rt.MetricsAddr); err != nil {
				_log.Log("Сервисный листенер остановлен: %s", err)
			}
		}()
	}

	sellerCreds := config.GetSellerCredentials()
	marketCreds := config.GetMarketCredentials()
	if !sellerCreds.Valid() {
		_log.Log("Доступы Ozon не заданы, площадка пропускается")
	}
	if !marketCreds.Valid() {
		_log.Log("Доступы Яндекс.Маркета не заданы, площадка пропускается")
	}
	if !sellerCreds.Valid() && !marketCreds.Valid() {
		_log.FatalLog("Не задана ни одна площадка, синхронизировать нечего")
	}

	stockService := stockfile.NewStockService(
		stockfile.NewHTTPFetcher(), appCfg.Stock, os.TempDir(), logger.NewLogger(os.Stdout, "[StockFile]"))

	runSync := func() {
		ctx := context.Background()
		remnants, err := stockService.Remnants(ctx)
		if err != nil {
			// Без файла остатков прогон не имеет смысла ни для одной площадки.
			_log.Log("%s", services2.FailureMessage(err))
			return
		}
		if sellerCreds.Valid() {
			ozonapp.NewOzonServer(sellerCreds, appCfg.Ozon, journalRepo, rt.DryRun, os.Stdout).Run(ctx, remnants)
		}
		if marketCreds.Valid() {
			marketapp.NewMarketServer(marketCreds, appCfg.Market, journalRepo, rt.DryRun, os.Stdout).Run(ctx, remnants)
		}
	}

	if rt.SyncEvery == "" {
		runSync()
		return
	}

	scheduler := gocron.NewScheduler(time.UTC)
	_, err = scheduler.Every(rt.SyncEvery).StartImmediately().DoWithJobDetails(func(job gocron.Job) {
		runSync()
		_log.Log("Следующий запуск синхронизации в %s", job.NextRun())
	})
	if err != nil {
		_log.FatalLog("Не удалось запланировать синхронизацию: %s", err)
	}
	_log.Log("Синхронизация по расписанию каждые %s", rt.SyncEvery)
	scheduler.StartBlocking()
}

// setupJournal подключает журнал прогонов, если настроен Postgres.
// Любая ошибка выключает журнал, но не синхронизацию.
func setupJournal(_log logger.Logger) *journal.Repository {
	pgCfg := config.GetPostgresConfig()
	if !pgCfg.Enabled() {
		return nil
	}
	var connector dbconnect.Database = postgres.NewPgConnector(pgCfg)
	db, err := connector.Connect()
	if err != nil {
		_log.Log("Журнал прогонов выключен: %s", err)
		return nil
	}
	if err := migration.ApplyAll(db,
		&journal2.CreateMigrationsSchema{},
		&journal2.CreateSyncSchema{},
		&journal2.CreateSyncRunsTable{},
	); err != nil {
		_log.Log("Журнал прогонов выключен, миграции не применились: %s", err)
		return nil
	}
	_log.Log("Журнал прогонов ведётся в sync.runs")
	return journal.NewRepository(db)
}
