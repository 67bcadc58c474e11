package postgres

import (
	"demoready/internal/platform/database/postgres"
)

// Connector hands out the current pool. *database.Lifecycle satisfies it.
type Connector interface {
	Conn() (*postgres.DB, error)
}
