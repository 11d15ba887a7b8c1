package postgres

import (
	"context"
	"database/sql"

	"rideshare/internal/repository"
	"rideshare/internal/sqlerr"
)

// Querier is an interface satisfied by both *sql.DB and *sql.Tx.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Ensure interfaces are satisfied.
var (
	_ Querier            = (*sql.DB)(nil)
	_ Querier            = (*sql.Tx)(nil)
	_ repository.Gateway = (*Gateway)(nil)
)

// Gateway is the PostgreSQL implementation of repository.Gateway. It issues
// every query against one connection handle and never caches.
type Gateway struct {
	db *sql.DB
	q  Querier
}

// NewGateway creates a gateway over an open database handle.
func NewGateway(db *sql.DB) *Gateway {
	return &Gateway{db: db, q: db}
}

// NewGatewayWithTx creates a gateway whose queries run inside tx.
func NewGatewayWithTx(tx *sql.Tx) *Gateway {
	return &Gateway{q: tx}
}

// queryID runs a single-row query returning an id.
func (g *Gateway) queryID(ctx context.Context, op, query string, args ...any) (int64, error) {
	var id int64
	if err := g.q.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, sqlerr.Wrap(op, err)
	}
	return id, nil
}

// queryExists runs a SELECT EXISTS query.
func (g *Gateway) queryExists(ctx context.Context, op, query string, args ...any) (bool, error) {
	var exists bool
	if err := g.q.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, sqlerr.Wrap(op, err)
	}
	return exists, nil
}
