package app

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"gomarketplace_sync/config"
	"gomarketplace_sync/internal/core/models"
	services2 "gomarketplace_sync/internal/core/services"
	"gomarketplace_sync/internal/journal"
	"gomarketplace_sync/internal/ozon/business/services"
	"gomarketplace_sync/internal/ozon/business/services/get"
	"gomarketplace_sync/internal/ozon/business/services/update"
	"gomarketplace_sync/metrics"
	"gomarketplace_sync/pkg/logger"
)

const marketplaceName = "ozon"

// OzonServer выполняет прогон синхронизации остатков и цен с Ozon.
type OzonServer struct {
	creds   *config.SellerCredentials
	cfg     config.OzonConfig
	journal *journal.Repository
	dryRun  bool
	log     logger.Logger
	writer  io.Writer
}

func NewOzonServer(creds *config.SellerCredentials, cfg config.OzonConfig, journalRepo *journal.Repository, dryRun bool, writer io.Writer) *OzonServer {
	_log := logger.NewLogger(writer, "[OzonServer]")
	return &OzonServer{
		creds:   creds,
		cfg:     cfg,
		journal: journalRepo,
		dryRun:  dryRun,
		log:     _log,
		writer:  writer,
	}
}

// Run прогоняет синхронизацию и фиксирует итог в журнале. Ошибка прогона
// классифицируется и логируется, процесс не прерывается: остальные площадки
// продолжают работу.
func (s *OzonServer) Run(ctx context.Context, remnants []models.StockRow) {
	runID := uuid.New()
	started := time.Now().UTC()
	runMetrics := &metrics.SyncMetrics{}

	s.log.Log("Запуск прогона %s", runID)
	err := s.sync(ctx, remnants, runMetrics)

	record := journal.Run{
		ID:          runID,
		Marketplace: marketplaceName,
		StartedAt:   started,
		FinishedAt:  time.Now().UTC(),
		OffersTotal: int(runMetrics.OffersListed.Load()),
		StocksSent:  int(runMetrics.StocksSubmitted.Load()),
		PricesSent:  int(runMetrics.PricesSubmitted.Load()),
		Status:      journal.StatusOK,
	}
	if err != nil {
		record.Status = journal.StatusFailed
		record.Error = err.Error()
		s.log.Log("%s", services2.FailureMessage(err))
		metrics.RecordRun(marketplaceName, "failed")
	} else {
		s.log.Log("Прогон %s завершён: товаров %d, остатков %d (ненулевых %d), цен %d",
			runID, runMetrics.OffersListed.Load(), runMetrics.StocksSubmitted.Load(),
			runMetrics.NonEmptyStocks.Load(), runMetrics.PricesSubmitted.Load())
		metrics.RecordRun(marketplaceName, "ok")
	}
	if err := s.journal.Record(ctx, record); err != nil {
		s.log.Log("Не удалось записать прогон в журнал: %s", err)
	}
}

func (s *OzonServer) sync(ctx context.Context, remnants []models.StockRow, m *metrics.SyncMetrics) error {
	auth := services.NewApiKeyAuth(s.creds.ClientID, s.creds.ApiKey)
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.cfg.RequestsPerMinute)), 5)

	listService := get.NewProductListService(auth, s.cfg.Endpoint, s.cfg.PageLimit, limiter)
	stockService := update.NewStockUpdateService(auth, s.cfg.Endpoint, limiter)
	priceService := update.NewPriceUpdateService(auth, s.cfg.Endpoint, limiter)

	// Остатки.
	offerIDs, err := listService.OfferIDs(ctx)
	if err != nil {
		return err
	}
	m.OffersListed.Store(int32(len(offerIDs)))

	assignments, err := services2.BuildStockAssignments(remnants, services2.NewOfferSet(offerIDs))
	if err != nil {
		return err
	}
	for _, a := range assignments {
		if a.Stock != 0 {
			m.NonEmptyStocks.Add(1)
		}
	}

	stockBatches, err := services2.NewBatcher(services.BuildStockRecords(assignments), s.cfg.StockBatch)
	if err != nil {
		return err
	}
	for {
		batch, ok := stockBatches.Next()
		if !ok {
			break
		}
		if s.dryRun {
			s.log.Log("dry-run: пропущена партия остатков из %d записей", len(batch))
			continue
		}
		if _, err := stockService.ImportStocks(ctx, batch); err != nil {
			return err
		}
		m.StocksSubmitted.Add(int32(len(batch)))
		m.BatchesSent.Add(1)
		metrics.RecordSubmission(marketplaceName, "stocks", len(batch))
	}

	// Цены. Ассортимент выгружается заново: набор из фазы остатков
	// уже израсходован сверкой.
	offerIDs, err = listService.OfferIDs(ctx)
	if err != nil {
		return err
	}
	priceAssignments, err := services2.BuildPriceAssignments(remnants, services2.NewOfferSet(offerIDs))
	if err != nil {
		return err
	}

	priceBatches, err := services2.NewBatcher(services.BuildPriceRecords(priceAssignments, s.cfg.Values), s.cfg.PriceBatch)
	if err != nil {
		return err
	}
	for {
		batch, ok := priceBatches.Next()
		if !ok {
			break
		}
		if s.dryRun {
			s.log.Log("dry-run: пропущена партия цен из %d записей", len(batch))
			continue
		}
		if _, err := priceService.ImportPrices(ctx, batch); err != nil {
			return err
		}
		m.PricesSubmitted.Add(int32(len(batch)))
		m.BatchesSent.Add(1)
		metrics.RecordSubmission(marketplaceName, "prices", len(batch))
	}
	return nil
}
