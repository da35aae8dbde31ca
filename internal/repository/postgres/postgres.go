// Package postgres persists generated topologies into PostgreSQL using a
// pgx connection pool. Batches are written with COPY.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"topogen/internal/domain"
	"topogen/internal/repository"
)

// Repository implements repository.Persister using PostgreSQL
type Repository struct {
	pool *pgxpool.Pool
}

// New connects to the database at databaseURL and migrates the schema
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	repo := &Repository{pool: pool}
	if err := repo.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func (r *Repository) migrate(ctx context.Context) error {
	for _, t := range repository.Tables {
		if _, err := r.pool.Exec(ctx, t.CreateStatement()); err != nil {
			return fmt.Errorf("create %s: %w", t.Name, err)
		}
	}
	return nil
}

// copyRows writes rows into table inside one transaction
func (r *Repository) copyRows(ctx context.Context, table repository.Table, rows [][]any) error {
	if len(rows) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	n, err := tx.CopyFrom(ctx, pgx.Identifier{table.Name}, table.Columns, pgx.CopyFromRows(rows))
	if err != nil {
		return fmt.Errorf("failed to copy into %s: %w", table.Name, err)
	}
	if int(n) != len(rows) {
		return fmt.Errorf("copied %d of %d rows into %s", n, len(rows), table.Name)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteTopology removes all generated data in one transaction
func (r *Repository) DeleteTopology(ctx context.Context) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, t := range repository.DeletionOrder() {
		if _, err := tx.Exec(ctx, "DELETE FROM "+pgx.Identifier{t.Name}.Sanitize()); err != nil {
			return fmt.Errorf("failed to clear %s: %w", t.Name, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// PersistNodes inserts the monitoring location if missing, then copies the nodes
func (r *Repository) PersistNodes(ctx context.Context, nodes []*domain.Node) error {
	query := repository.LocationTable.InsertStatement(repository.DollarN) + " ON CONFLICT (id) DO NOTHING"
	for _, row := range repository.LocationRows(nodes) {
		if _, err := r.pool.Exec(ctx, query, row...); err != nil {
			return fmt.Errorf("failed to insert location: %w", err)
		}
	}
	return r.copyRows(ctx, repository.NodeTable, repository.NodeRows(nodes))
}

func (r *Repository) PersistCdpElements(ctx context.Context, elements []*domain.CdpElement) error {
	return r.copyRows(ctx, repository.CdpElementTable, repository.CdpElementRows(elements))
}

func (r *Repository) PersistIsIsElements(ctx context.Context, elements []*domain.IsIsElement) error {
	return r.copyRows(ctx, repository.IsIsElementTable, repository.IsIsElementRows(elements))
}

func (r *Repository) PersistLldpElements(ctx context.Context, elements []*domain.LldpElement) error {
	return r.copyRows(ctx, repository.LldpElementTable, repository.LldpElementRows(elements))
}

func (r *Repository) PersistCdpLinks(ctx context.Context, links []*domain.CdpLink) error {
	return r.copyRows(ctx, repository.CdpLinkTable, repository.CdpLinkRows(links))
}

func (r *Repository) PersistIsIsLinks(ctx context.Context, links []*domain.IsIsLink) error {
	return r.copyRows(ctx, repository.IsIsLinkTable, repository.IsIsLinkRows(links))
}

func (r *Repository) PersistLldpLinks(ctx context.Context, links []*domain.LldpLink) error {
	return r.copyRows(ctx, repository.LldpLinkTable, repository.LldpLinkRows(links))
}

func (r *Repository) PersistOspfLinks(ctx context.Context, links []*domain.OspfLink) error {
	return r.copyRows(ctx, repository.OspfLinkTable, repository.OspfLinkRows(links))
}

func (r *Repository) PersistSnmpInterfaces(ctx context.Context, interfaces []*domain.SnmpInterface) error {
	return r.copyRows(ctx, repository.SnmpInterfaceTable, repository.SnmpInterfaceRows(interfaces))
}

func (r *Repository) PersistIpInterfaces(ctx context.Context, interfaces []*domain.IpInterface) error {
	return r.copyRows(ctx, repository.IpInterfaceTable, repository.IpInterfaceRows(interfaces))
}

// Counts returns the number of rows per table
func (r *Repository) Counts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(repository.Tables))
	for _, t := range repository.Tables {
		var n int
		query := "SELECT COUNT(*) FROM " + pgx.Identifier{t.Name}.Sanitize()
		if err := r.pool.QueryRow(ctx, query).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", t.Name, err)
		}
		counts[t.Name] = n
	}
	return counts, nil
}

// Close releases the pool
func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}
