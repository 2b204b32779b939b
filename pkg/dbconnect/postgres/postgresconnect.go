package postgres

import (
	"database/sql"
	"fmt"
	_ "github.com/lib/pq"
	"log"
	"sync"
	"time"

	"gomarketplace_sync/pkg/dbconnect"
)

const maxRetries = 3
const dbMaxOpenConns = 5
const retryDelay = 2 * time.Second

// PostgresDatabase подключается к Postgres с повторами и кеширует соединение.
// Единственный потребитель — журнал прогонов, поэтому пул небольшой.
type PostgresDatabase struct {
	cfg dbconnect.ConnectionConfig
	db  *sql.DB
	mu  sync.Mutex
}

func NewPgConnector(cfg dbconnect.ConnectionConfig) *PostgresDatabase {
	return &PostgresDatabase{cfg: cfg}
}

func (pg *PostgresDatabase) Connect() (*sql.DB, error) {
	pg.mu.Lock()
	defer pg.mu.Unlock()

	if pg.db != nil {
		return pg.db, nil
	}

	var err error
	conStr := pg.cfg.GetConnectionString()

	for i := 0; i < maxRetries; i++ {
		pg.db, err = sql.Open("postgres", conStr)
		if err != nil {
			log.Printf("Failed to open Postgres (attempt %d/%d): %v", i+1, maxRetries, err)
			time.Sleep(retryDelay)
			continue
		}

		pg.db.SetMaxOpenConns(dbMaxOpenConns)

		if err = pg.db.Ping(); err != nil {
			log.Printf("Failed to ping Postgres (attempt %d/%d): %v", i+1, maxRetries, err)
			pg.db.Close()
			pg.db = nil
			time.Sleep(retryDelay)
			continue
		}

		return pg.db, nil
	}
	return nil, fmt.Errorf("postgres is unreachable after %d attempts: %w", maxRetries, err)
}

func (pg *PostgresDatabase) Ping() error {
	pg.mu.Lock()
	defer pg.mu.Unlock()

	if pg.db == nil {
		return fmt.Errorf("database connection is not established")
	}

	if err := pg.db.Ping(); err != nil {
		pg.db.Close()
		pg.db = nil
		return fmt.Errorf("ping failed: %w", err)
	}
	return nil
}
