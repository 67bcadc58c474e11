package database

import (
	"context"
	"errors"
	"sync"

	"demoready/internal/config"
	"demoready/internal/platform/database/postgres"
	"demoready/internal/platform/logger"
)

var ErrNotConnected = errors.New("database connection is not initialized")

type Lifecycle struct {
	cfg    *config.DatabaseConfig
	logger logger.Logger
	db     *postgres.DB
	mu     sync.Mutex
}

func NewDatabaseLifecycle(cfg *config.DatabaseConfig, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		cfg:    cfg,
		logger: log,
	}
}

// Start opens the pool without connecting. Reachability is what the checks
// measure, so a down server must not prevent them from running.
func (d *Lifecycle) Start(context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db != nil {
		d.logger.Warn("Database pool already open, reopening")
		if err := d.db.Close(); err != nil {
			d.logger.Error("Failed to close existing database pool", logger.Error(err))
		}
		d.db = nil
	}

	db, err := postgres.New(&d.cfg.Postgres)
	if err != nil {
		d.logger.Error("Failed to create PostgreSQL pool", logger.Error(err))
		return err
	}

	d.db = db
	d.logger.Debug("Opened PostgreSQL pool",
		logger.String("host", d.cfg.Postgres.Host),
		logger.Int("port", d.cfg.Postgres.Port),
		logger.String("database", d.cfg.Postgres.Database))
	return nil
}

func (d *Lifecycle) Stop(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.db == nil {
		return nil
	}

	done := make(chan error, 1)
	db := d.db
	go func() {
		done <- db.Close()
	}()

	select {
	case err := <-done:
		d.db = nil
		if err != nil {
			d.logger.Error("Error closing database pool", logger.Error(err))
			return err
		}
		d.logger.Debug("Database pool closed")
		return nil
	case <-ctx.Done():
		d.logger.Warn("Database shutdown timeout, abandoning pool")
		d.db = nil
		return ctx.Err()
	}
}

func (d *Lifecycle) Connection() *postgres.DB {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.db
}

// Conn is Connection with the nil case turned into ErrNotConnected.
func (d *Lifecycle) Conn() (*postgres.DB, error) {
	db := d.Connection()
	if db == nil {
		return nil, ErrNotConnected
	}
	return db, nil
}

// DSN is the connection string the pool was configured with. The realtime
// listener opens its own dedicated connection from it.
func (d *Lifecycle) DSN() string {
	return d.cfg.Postgres.DSN()
}
