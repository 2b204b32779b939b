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
	"gomarketplace_sync/internal/market/business/services"
	"gomarketplace_sync/internal/market/business/services/get"
	"gomarketplace_sync/internal/market/business/services/update"
	"gomarketplace_sync/metrics"
	"gomarketplace_sync/pkg/logger"
)

const marketplaceName = "market"

// MarketServer выполняет прогоны синхронизации остатков и цен с Яндекс.Маркетом.
// Кампании FBS и DBS обрабатываются по очереди, каждая со своим складом
// и своей записью в журнале.
type MarketServer struct {
	creds   *config.MarketCredentials
	cfg     config.MarketConfig
	journal *journal.Repository
	dryRun  bool
	now     func() time.Time
	log     logger.Logger
	writer  io.Writer
}

func NewMarketServer(creds *config.MarketCredentials, cfg config.MarketConfig, journalRepo *journal.Repository, dryRun bool, writer io.Writer) *MarketServer {
	_log := logger.NewLogger(writer, "[MarketServer]")
	return &MarketServer{
		creds:   creds,
		cfg:     cfg,
		journal: journalRepo,
		dryRun:  dryRun,
		now:     time.Now,
		log:     _log,
		writer:  writer,
	}
}

// Run прогоняет синхронизацию по всем настроенным кампаниям. Ошибка одной
// кампании классифицируется и логируется, остальные кампании продолжают работу.
func (s *MarketServer) Run(ctx context.Context, remnants []models.StockRow) {
	for _, campaign := range s.creds.Campaigns {
		s.runCampaign(ctx, campaign, remnants)
	}
}

func (s *MarketServer) runCampaign(ctx context.Context, campaign config.Campaign, remnants []models.StockRow) {
	runID := uuid.New()
	started := time.Now().UTC()
	runMetrics := &metrics.SyncMetrics{}

	s.log.Log("Запуск прогона %s для кампании %s", runID, campaign.Label)
	err := s.sync(ctx, campaign, remnants, runMetrics)

	record := journal.Run{
		ID:          runID,
		Marketplace: marketplaceName,
		Campaign:    campaign.Label,
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
		s.log.Log("Прогон %s (%s) завершён: товаров %d, остатков %d (ненулевых %d), цен %d",
			runID, campaign.Label, runMetrics.OffersListed.Load(), runMetrics.StocksSubmitted.Load(),
			runMetrics.NonEmptyStocks.Load(), runMetrics.PricesSubmitted.Load())
		metrics.RecordRun(marketplaceName, "ok")
	}
	if err := s.journal.Record(ctx, record); err != nil {
		s.log.Log("Не удалось записать прогон в журнал: %s", err)
	}
}

func (s *MarketServer) sync(ctx context.Context, campaign config.Campaign, remnants []models.StockRow, m *metrics.SyncMetrics) error {
	auth := services.NewBearerAuth(s.creds.Token)
	limiter := rate.NewLimiter(rate.Every(time.Minute/time.Duration(s.cfg.RequestsPerMinute)), 5)

	listService := get.NewOfferMappingService(auth, s.cfg.Endpoint, campaign.CampaignID, s.cfg.PageLimit, limiter)
	stockService := update.NewStockUpdateService(auth, s.cfg.Endpoint, campaign.CampaignID, limiter)
	priceService := update.NewPriceUpdateService(auth, s.cfg.Endpoint, campaign.CampaignID, limiter)

	// Остатки.
	skus, err := listService.ShopSkus(ctx)
	if err != nil {
		return err
	}
	m.OffersListed.Store(int32(len(skus)))

	assignments, err := services2.BuildStockAssignments(remnants, services2.NewOfferSet(skus))
	if err != nil {
		return err
	}
	for _, a := range assignments {
		if a.Stock != 0 {
			m.NonEmptyStocks.Add(1)
		}
	}

	stockBatches, err := services2.NewBatcher(
		services.BuildStockRecords(assignments, campaign.WarehouseID, s.cfg.Values, s.now()), s.cfg.StockBatch)
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
		if _, err := stockService.UpdateStocks(ctx, batch); err != nil {
			return err
		}
		m.StocksSubmitted.Add(int32(len(batch)))
		m.BatchesSent.Add(1)
		metrics.RecordSubmission(marketplaceName, "stocks", len(batch))
	}

	// Цены. Ассортимент выгружается заново: набор из фазы остатков
	// уже израсходован сверкой.
	skus, err = listService.ShopSkus(ctx)
	if err != nil {
		return err
	}
	priceAssignments, err := services2.BuildPriceAssignments(remnants, services2.NewOfferSet(skus))
	if err != nil {
		return err
	}
	priceRecords, err := services.BuildPriceRecords(priceAssignments, s.cfg.Values)
	if err != nil {
		return err
	}

	priceBatches, err := services2.NewBatcher(priceRecords, s.cfg.PriceBatch)
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
		if _, err := priceService.UpdatePrices(ctx, batch); err != nil {
			return err
		}
		m.PricesSubmitted.Add(int32(len(batch)))
		m.BatchesSent.Add(1)
		metrics.RecordSubmission(marketplaceName, "prices", len(batch))
	}
	return nil
}
