package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Probe runs the health round-trip against the pool.
type Probe struct {
	DB rowQuerier
}

func NewProbe(db *sql.DB) *Probe {
	return &Probe{DB: db}
}

// Now returns the database clock.
func (p *Probe) Now(ctx context.Context) (time.Time, error) {
	var now time.Time
	if err := p.DB.QueryRowContext(ctx, `SELECT NOW()`).Scan(&now); err != nil {
		return time.Time{}, fmt.Errorf("database probe failed: %w", err)
	}
	return now, nil
}
