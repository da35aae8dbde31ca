package cli

import (
	"context"
	"fmt"
	"io"

	"topogen/internal/codec"
	"topogen/internal/config"
	"topogen/internal/domain"
	"topogen/internal/logger"
	"topogen/internal/repository"
	"topogen/internal/repository/file"
	"topogen/internal/repository/postgres"
	"topogen/internal/repository/sqlite"
)

// openPersister connects the configured driver; stdout is used by the file
// driver when the DSN is "-"
func openPersister(ctx context.Context, cfg *config.Config, stdout io.Writer) (repository.Persister, error) {
	dsn := cfg.DatabaseDSN()

	switch cfg.Database.Driver {
	case "sqlite":
		logger.Debug("opening sqlite database", "path", dsn)
		return sqlite.New(dsn)

	case "postgres":
		if dsn == "" {
			return nil, fmt.Errorf("%w: postgres driver needs --db-dsn or %s", domain.ErrInvalidConfig, config.EnvDatabaseURL)
		}
		ctx, cancel := context.WithTimeout(ctx, cfg.Database.ConnectTimeout.Duration())
		defer cancel()
		return postgres.New(ctx, dsn)

	case "file":
		exporter, err := codec.ForFormat(cfg.Output.Format)
		if err != nil {
			return nil, err
		}
		g := cfg.Generation
		if dsn == "-" {
			return file.NewWriter(func() (io.WriteCloser, error) { return nopCloser{stdout}, nil },
				exporter, g.Topology, g.Protocol), nil
		}
		return file.New(dsn, exporter, g.Topology, g.Protocol), nil

	default:
		return nil, fmt.Errorf("%w: unknown database driver %q", domain.ErrInvalidConfig, cfg.Database.Driver)
	}
}

// logCounts reports stored row counts when the persister can tell them
func logCounts(ctx context.Context, p repository.Persister) {
	counter, ok := p.(repository.Counter)
	if !ok {
		return
	}
	counts, err := counter.Counts(ctx)
	if err != nil {
		logger.Warn("failed to count rows", "error", err)
		return
	}
	keyvals := make([]any, 0, 2*len(counts))
	for _, t := range repository.Tables {
		if n, ok := counts[t.Name]; ok {
			keyvals = append(keyvals, t.Name, n)
		}
	}
	logger.Debug("stored rows", keyvals...)
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
