package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	interfaces "github.com/sheikh-saqib/txn-ledger-replay/internal/interfaces" // interface SnapshotStore
	"github.com/sheikh-saqib/txn-ledger-replay/internal/models"
)

const schema = `CREATE TABLE IF NOT EXISTS account_snapshots (
	run_id     UUID           NOT NULL,
	client     INTEGER        NOT NULL,
	available  NUMERIC(28, 4) NOT NULL,
	held       NUMERIC(28, 4) NOT NULL,
	total      NUMERIC(28, 4) NOT NULL,
	locked     BOOLEAN        NOT NULL,
	created_at TIMESTAMPTZ    NOT NULL,
	PRIMARY KEY (run_id, client)
)`

// PostgresSnapshotStore writes the final accounts of a run to account_snapshots.
type PostgresSnapshotStore struct {
	db  *sql.DB
	now func() time.Time
}

func NewPostgresSnapshotStore(db *sql.DB) *PostgresSnapshotStore {
	return &PostgresSnapshotStore{
		db:  db,
		now: time.Now,
	}
}

// Open connects with the lib/pq driver and makes sure the table exists.
func Open(ctx context.Context, dsn string) (*PostgresSnapshotStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return NewPostgresSnapshotStore(db), nil
}

func (p *PostgresSnapshotStore) Close() error {
	return p.db.Close()
}

func (p *PostgresSnapshotStore) saveSnapshot(ctx context.Context, dbTx *sql.Tx, runID string, account models.Account, at time.Time) error {
	const query = `INSERT INTO account_snapshots (run_id, client, available, held, total, locked, created_at)
	VALUES ($1,$2,$3,$4,$5,$6,$7)`

	_, err := dbTx.ExecContext(ctx, query, runID, int(account.Client), account.Available, account.Held, account.Total, account.Locked, at)
	return err
}

// SaveSnapshots inserts all rows in a single database transaction.
func (p *PostgresSnapshotStore) SaveSnapshots(ctx context.Context, runID string, accounts []models.Account) (err error) {
	dbTx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer func() {
		if err != nil {
			dbTx.Rollback()
		}
	}()

	at := p.now().UTC()
	for _, account := range accounts {
		if err = p.saveSnapshot(ctx, dbTx, runID, account, at); err != nil {
			return fmt.Errorf("client %d: %w", account.Client, err)
		}
	}

	return dbTx.Commit()
}

// CountSnapshots returns the number of rows stored for a run.
func (p *PostgresSnapshotStore) CountSnapshots(ctx context.Context, runID string) (int, error) {
	const query = `SELECT count(*) FROM account_snapshots WHERE run_id = $1`

	var n int
	if err := p.db.QueryRowContext(ctx, query, runID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

var _ interfaces.SnapshotStore = (*PostgresSnapshotStore)(nil)
