package postgres

import (
	"context"
	"fmt"

	"github.com/lib/pq"

	"demoready/internal/core/ports"
)

// DemoDataTables names the relations the seed data lives in. Identifiers are
// quoted, so they are matched case-sensitively.
type DemoDataTables struct {
	Users      string
	RoleColumn string
	Tables     string
}

type DemoDataRepository struct {
	db     Connector
	tables DemoDataTables
}

// Compile-time interface check
var _ ports.DemoDataRepository = (*DemoDataRepository)(nil)

func NewDemoDataRepository(db Connector, tables DemoDataTables) *DemoDataRepository {
	return &DemoDataRepository{db: db, tables: tables}
}

func (r *DemoDataRepository) CountUsersByRole(ctx context.Context, roles []string) (map[string]int, error) {
	counts := make(map[string]int, len(roles))
	for _, role := range roles {
		counts[role] = 0
	}
	if len(roles) == 0 {
		return counts, nil
	}

	conn, err := r.db.Conn()
	if err != nil {
		return nil, err
	}

	column := pq.QuoteIdentifier(r.tables.RoleColumn)
	query := fmt.Sprintf(`SELECT %s, COUNT(*) FROM %s WHERE %s = ANY($1) GROUP BY %s`,
		column, pq.QuoteIdentifier(r.tables.Users), column, column)

	rows, err := conn.QueryContext(ctx, query, pq.Array(roles))
	if err != nil {
		return nil, fmt.Errorf("failed to count users by role: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var (
			role  string
			count int
		)
		if err := rows.Scan(&role, &count); err != nil {
			return nil, fmt.Errorf("failed to scan role count: %w", err)
		}
		counts[role] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read role counts: %w", err)
	}

	return counts, nil
}

func (r *DemoDataRepository) CountTables(ctx context.Context) (int, error) {
	conn, err := r.db.Conn()
	if err != nil {
		return 0, err
	}

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, pq.QuoteIdentifier(r.tables.Tables))

	var count int
	if err := conn.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tables: %w", err)
	}
	return count, nil
}
