package postgres

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	"riderequest/config"
	"riderequest/pkg/logger"
	"riderequest/storage"
)

type Store struct {
	pool *pgxpool.Pool
	log  logger.ILogger
}

// New builds the connection pool. The pool connects lazily, so an unreachable
// database does not fail New: it is reported once here and every later
// operation returns the driver error until the database comes back.
func New(ctx context.Context, cfg config.Config, log logger.ILogger) (*Store, error) {
	url := cfg.PostgresURL()

	poolConfig, err := pgxpool.ParseConfig(url)
	if err != nil {
		log.Error("error while parsing Postgres config", logger.Error(err))
		return nil, err
	}
	if cfg.PostgresMaxConns > 0 {
		poolConfig.MaxConns = cfg.PostgresMaxConns
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		log.Error("failed to create Postgres pool", logger.Error(err))
		return nil, err
	}

	s := &Store{
		pool: pool,
		log:  log,
	}

	if err := s.Ping(ctx); err != nil {
		log.Warning("Postgres is not reachable, server will continue without DB", logger.Error(err))
		return s, nil
	}

	s.migrate(url, cfg.MigrationsPath)

	log.Info("Postgres connected",
		logger.String("host", cfg.PostgresHost),
		logger.String("database", cfg.PostgresDB),
	)
	return s, nil
}

// migrate applies pending schema files. Failures are logged only: the rides
// table may already exist, and a missing table surfaces as a write failure.
func (s *Store) migrate(url, path string) {
	mPath, err := filepath.Abs(path)
	if err != nil {
		s.log.Error("invalid migrations path", logger.String("path", path), logger.Error(err))
		return
	}
	if _, err := os.Stat(mPath); err != nil {
		s.log.Warning("no migrations found", logger.String("path", mPath))
		return
	}

	m, err := migrate.New("file://"+mPath, url)
	if err != nil {
		s.log.Error("migration init error", logger.Error(err))
		return
	}
	defer m.Close()

	if err = m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			s.log.Info("no migrations to apply")
			return
		}
		s.log.Error("migration up error", logger.Error(err))
		return
	}
	s.log.Info("migrations applied", logger.String("path", mPath))
}

func (s *Store) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

func (s *Store) Close() {
	s.pool.Close()
}

func (s *Store) Ride() storage.IRideStorage { return NewRideRepo(s.pool, s.log) }
