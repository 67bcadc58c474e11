package postgres

import (
	"context"

	"demoready/internal/core/ports"
)

type DiagnosticsRepository struct {
	db Connector
}

// Compile-time interface check
var _ ports.DatabaseDiagnostics = (*DiagnosticsRepository)(nil)

func NewDiagnosticsRepository(db Connector) *DiagnosticsRepository {
	return &DiagnosticsRepository{db: db}
}

func (r *DiagnosticsRepository) Ping(ctx context.Context) error {
	conn, err := r.db.Conn()
	if err != nil {
		return err
	}
	return conn.Ping(ctx)
}

func (r *DiagnosticsRepository) SelectOne(ctx context.Context) error {
	conn, err := r.db.Conn()
	if err != nil {
		return err
	}
	return conn.SelectOne(ctx)
}
