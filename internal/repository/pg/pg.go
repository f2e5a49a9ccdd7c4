package pg

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"time"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

const (
	migrationsTable = "schema_migrations"
	schemaName      = "public"
	migrationsPath  = "./migrations"

	maxAttempts  = 3
	retryBackoff = 100 * time.Millisecond
)

type Repository struct {
	databaseURI string
	db          *sql.DB
	lg          *zap.SugaredLogger
	classifier  *PostgresErrorClassifier

	watchHub      *watchHub
	stopWatchChan chan struct{}
}

func New(databaseURI string, lg *zap.SugaredLogger) (*Repository, error) {
	pool, err := pgxpool.New(context.Background(), databaseURI)
	if err != nil {
		return nil, err
	}

	db := stdlib.OpenDBFromPool(pool)

	driver, err := postgres.WithInstance(db, &postgres.Config{
		MigrationsTable: migrationsTable,
		SchemaName:      schemaName,
	})
	if err != nil {
		return nil, err
	}

	absPath, err := filepath.Abs(migrationsPath)
	if err != nil {
		return nil, err
	}

	m, err := migrate.NewWithDatabaseInstance("file://"+absPath, "postgres", driver)
	if err != nil {
		return nil, err
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return nil, err
	}

	return &Repository{
		databaseURI: databaseURI,
		db:          db,
		lg:          lg,
		classifier:  NewPostgresErrorClassifier(),

		watchHub:      newWatchHub(),
		stopWatchChan: make(chan struct{}),
	}, nil
}

// executeWithRetryConnection runs op against the database, retrying only
// errors the classifier marks as retriable.
func (r *Repository) executeWithRetryConnection(op func(db *sql.DB) error) error {
	var err error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		err = op(r.db)
		if err == nil || r.classifier.Classify(err) == NonRetriable {
			return err
		}

		time.Sleep(time.Duration(attempt+1) * retryBackoff)
	}
	return err
}

func (r *Repository) Ping() error {
	return r.db.Ping()
}

func (r *Repository) Shutdown() error {
	return r.db.Close()
}
