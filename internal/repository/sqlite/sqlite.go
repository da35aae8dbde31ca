package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"topogen/internal/domain"
	"topogen/internal/repository"

	_ "modernc.org/sqlite"
)

// Repository implements repository.Persister using SQLite
type Repository struct {
	db *sql.DB
}

// New creates a new SQLite repository
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// a second connection to :memory: would see an empty database
	db.SetMaxOpenConns(1)

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func dsn(dbPath string) string {
	sep := "?"
	if strings.Contains(dbPath, "?") {
		sep = "&"
	}
	return dbPath + sep + "_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
}

func (r *Repository) migrate() error {
	statements := make([]string, 0, len(repository.Tables))
	for _, t := range repository.Tables {
		statements = append(statements, t.CreateStatement())
	}
	statements = append(statements,
		`CREATE INDEX IF NOT EXISTS idx_cdplink_node ON cdplink(nodeid)`,
		`CREATE INDEX IF NOT EXISTS idx_isislink_node ON isislink(nodeid)`,
		`CREATE INDEX IF NOT EXISTS idx_lldplink_node ON lldplink(nodeid)`,
		`CREATE INDEX IF NOT EXISTS idx_ospflink_node ON ospflink(nodeid)`,
	)

	_, err := r.db.Exec(strings.Join(statements, ";\n"))
	return err
}

// batch is one table's worth of rows written in a shared transaction
type batch struct {
	table  repository.Table
	rows   [][]any
	ignore bool // skip rows whose primary key already exists
}

// write inserts all batches in one transaction with a prepared statement per table
func (r *Repository) write(ctx context.Context, batches ...batch) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, b := range batches {
		if len(b.rows) == 0 {
			continue
		}

		query := b.table.InsertStatement(repository.QuestionMark)
		if b.ignore {
			query += " ON CONFLICT DO NOTHING"
		}

		stmt, err := tx.PrepareContext(ctx, query)
		if err != nil {
			return fmt.Errorf("failed to prepare %s statement: %w", b.table.Name, err)
		}

		for _, row := range b.rows {
			if _, err := stmt.ExecContext(ctx, row...); err != nil {
				stmt.Close()
				return fmt.Errorf("failed to insert into %s: %w", b.table.Name, err)
			}
		}
		stmt.Close()
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// DeleteTopology removes all generated data (order matters due to foreign keys)
func (r *Repository) DeleteTopology(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, t := range repository.DeletionOrder() {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+t.Name); err != nil {
			return fmt.Errorf("failed to clear %s: %w", t.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// PersistNodes inserts the nodes together with their monitoring location
func (r *Repository) PersistNodes(ctx context.Context, nodes []*domain.Node) error {
	return r.write(ctx,
		batch{table: repository.LocationTable, rows: repository.LocationRows(nodes), ignore: true},
		batch{table: repository.NodeTable, rows: repository.NodeRows(nodes)},
	)
}

func (r *Repository) PersistCdpElements(ctx context.Context, elements []*domain.CdpElement) error {
	return r.write(ctx, batch{table: repository.CdpElementTable, rows: repository.CdpElementRows(elements)})
}

func (r *Repository) PersistIsIsElements(ctx context.Context, elements []*domain.IsIsElement) error {
	return r.write(ctx, batch{table: repository.IsIsElementTable, rows: repository.IsIsElementRows(elements)})
}

func (r *Repository) PersistLldpElements(ctx context.Context, elements []*domain.LldpElement) error {
	return r.write(ctx, batch{table: repository.LldpElementTable, rows: repository.LldpElementRows(elements)})
}

func (r *Repository) PersistCdpLinks(ctx context.Context, links []*domain.CdpLink) error {
	return r.write(ctx, batch{table: repository.CdpLinkTable, rows: repository.CdpLinkRows(links)})
}

func (r *Repository) PersistIsIsLinks(ctx context.Context, links []*domain.IsIsLink) error {
	return r.write(ctx, batch{table: repository.IsIsLinkTable, rows: repository.IsIsLinkRows(links)})
}

func (r *Repository) PersistLldpLinks(ctx context.Context, links []*domain.LldpLink) error {
	return r.write(ctx, batch{table: repository.LldpLinkTable, rows: repository.LldpLinkRows(links)})
}

func (r *Repository) PersistOspfLinks(ctx context.Context, links []*domain.OspfLink) error {
	return r.write(ctx, batch{table: repository.OspfLinkTable, rows: repository.OspfLinkRows(links)})
}

func (r *Repository) PersistSnmpInterfaces(ctx context.Context, interfaces []*domain.SnmpInterface) error {
	return r.write(ctx, batch{table: repository.SnmpInterfaceTable, rows: repository.SnmpInterfaceRows(interfaces)})
}

func (r *Repository) PersistIpInterfaces(ctx context.Context, interfaces []*domain.IpInterface) error {
	return r.write(ctx, batch{table: repository.IpInterfaceTable, rows: repository.IpInterfaceRows(interfaces)})
}

// Counts returns the number of rows per table
func (r *Repository) Counts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int, len(repository.Tables))
	for _, t := range repository.Tables {
		var n int
		if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+t.Name).Scan(&n); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", t.Name, err)
		}
		counts[t.Name] = n
	}
	return counts, nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}
