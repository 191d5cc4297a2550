package postgres

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-health-monitor/internal/config"
)

type Conn interface {
	Queryer
	Close() error
	Ping(context.Context) error
	RunInTransaction(context.Context, func(*sql.Tx) error) error
	Migrate(context.Context) error
}

type Connection struct {
	*sql.DB
}

func NewConnection(
	ctx context.Context,
	cfg config.Database,
) (*Connection, error) {
	db, err := sql.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Connection{DB: db}, nil
}

func (c *Connection) Ping(ctx context.Context) error {
	return c.DB.PingContext(ctx)
}

// RunInTransaction run a query in the transaction
func (c *Connection) RunInTransaction(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err := recover(); err != nil {
			_ = tx.Rollback()
			panic(err)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}

	return tx.Commit()
}

// Schema do histórico de execuções. Idempotente.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS health_reports (
		id             VARCHAR(36) PRIMARY KEY,
		run_id         VARCHAR(32) NOT NULL UNIQUE,
		account_id     VARCHAR(64) NOT NULL,
		account_name   TEXT NOT NULL DEFAULT '',
		score          INTEGER NOT NULL,
		grade          CHAR(1) NOT NULL,
		status         VARCHAR(16) NOT NULL,
		critical_count INTEGER NOT NULL DEFAULT 0,
		high_count     INTEGER NOT NULL DEFAULT 0,
		medium_count   INTEGER NOT NULL DEFAULT 0,
		low_count      INTEGER NOT NULL DEFAULT 0,
		components     JSONB NOT NULL,
		issues         JSONB NOT NULL,
		warnings       TEXT[] NOT NULL DEFAULT '{}',
		alerted        TEXT[] NOT NULL DEFAULT '{}',
		started_at     TIMESTAMPTZ NOT NULL,
		finished_at    TIMESTAMPTZ NOT NULL,
		created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_health_reports_account_created
		ON health_reports (account_id, created_at DESC)`,
}

// Migrate aplica o schema numa única transação
func (c *Connection) Migrate(ctx context.Context) error {
	return c.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, stmt := range Schema {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("falha ao aplicar schema: %w", err)
			}
		}
		logrus.WithField("statements", len(Schema)).Info("database: schema aplicado")
		return nil
	})
}
