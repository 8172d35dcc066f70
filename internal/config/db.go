package config

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

var (
	DB   *sql.DB
	dbMu sync.Mutex
)

// ConnectDB initializes the shared DB connection (idempotent). The first
// connection is retried with exponential backoff up to DBConnectTimeout.
func ConnectDB(ctx context.Context, e Env, log *zap.Logger) (*sql.DB, error) {
	const operation = "config.ConnectDB"

	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		return DB, nil
	}

	db, err := sql.Open("mysql", e.DSN())
	if err != nil {
		return nil, fmt.Errorf("%s: open: %w", operation, err)
	}

	db.SetMaxOpenConns(e.DBMaxOpenConns)
	db.SetMaxIdleConns(e.DBMaxIdleConns)
	db.SetConnMaxLifetime(e.DBConnMaxLifetime)
	db.SetConnMaxIdleTime(e.DBConnMaxIdleTime)

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = e.DBConnectTimeout
	policy.MaxInterval = 15 * time.Second

	err = backoff.RetryNotify(
		func() error {
			pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
			defer cancel()
			return db.PingContext(pingCtx)
		},
		backoff.WithContext(policy, ctx),
		func(err error, next time.Duration) {
			log.Warn("MySQL ping failed, retrying", zap.Error(err), zap.Duration("next_attempt_in", next))
		},
	)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: ping: %w", operation, err)
	}

	DB = db
	log.Info("connected to MySQL", zap.String("host", e.DBHost), zap.String("db", e.DBName))
	return DB, nil
}

func CloseDB() {
	dbMu.Lock()
	defer dbMu.Unlock()

	if DB != nil {
		_ = DB.Close()
		DB = nil
	}
}
