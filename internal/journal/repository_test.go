package journal

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
)

// Без настроенного Postgres журнал обязан молча пропускать запись,
// не мешая синхронизации.
func TestNilRepositoryIsNoop(t *testing.T) {
	var repo *Repository

	run := Run{
		ID:          uuid.New(),
		Marketplace: "ozon",
		StartedAt:   time.Now().UTC(),
		FinishedAt:  time.Now().UTC(),
		Status:      StatusOK,
	}
	if err := repo.Record(context.Background(), run); err != nil {
		t.Fatalf("nil repository Record: %v", err)
	}

	runs, err := repo.LastRuns(context.Background(), 10)
	if err != nil {
		t.Fatalf("nil repository LastRuns: %v", err)
	}
	if runs != nil {
		t.Errorf("nil repository returned runs: %v", runs)
	}
}
