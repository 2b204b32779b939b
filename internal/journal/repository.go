package journal

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

const (
	StatusOK     = "ok"
	StatusFailed = "failed"
)

// Run — итог одного прогона синхронизации для журнала.
type Run struct {
	ID          uuid.UUID `json:"run_id"`
	Marketplace string    `json:"marketplace"`
	Campaign    string    `json:"campaign,omitempty"`
	StartedAt   time.Time `json:"started_at"`
	FinishedAt  time.Time `json:"finished_at"`
	OffersTotal int       `json:"offers_total"`
	StocksSent  int       `json:"stocks_sent"`
	PricesSent  int       `json:"prices_sent"`
	Status      string    `json:"status"`
	Error       string    `json:"error,omitempty"`
}

// Repository ведёт журнал прогонов в таблице sync.runs.
// Нулевой репозиторий допустим: методы превращаются в no-op, синхронизация
// работает и без настроенной базы.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Record(ctx context.Context, run Run) error {
	if r == nil || r.db == nil {
		return nil
	}
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO sync.runs
			(run_id, marketplace, campaign, started_at, finished_at,
			 offers_total, stocks_sent, prices_sent, status, error)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		run.ID, run.Marketplace, run.Campaign, run.StartedAt, run.FinishedAt,
		run.OffersTotal, run.StocksSent, run.PricesSent, run.Status, run.Error)
	return err
}

// LastRuns возвращает последние прогоны, новые первыми.
func (r *Repository) LastRuns(ctx context.Context, limit int) ([]Run, error) {
	if r == nil || r.db == nil {
		return nil, nil
	}
	rows, err := r.db.QueryContext(ctx, `
		SELECT run_id, marketplace, campaign, started_at, finished_at,
		       offers_total, stocks_sent, prices_sent, status, error
		FROM sync.runs
		ORDER BY started_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Marketplace, &run.Campaign,
			&run.StartedAt, &run.FinishedAt, &run.OffersTotal,
			&run.StocksSent, &run.PricesSent, &run.Status, &run.Error); err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
