package interfaces

import (
	"context"

	"github.com/sheikh-saqib/txn-ledger-replay/internal/models"
)

// LedgerStore owns the two tables of a run: accounts keyed by client and
// cash flows keyed by tx. Values are returned by copy; callers write back
// with the Save methods.
type LedgerStore interface {
	GetAccount(client uint16) (models.Account, bool, error)
	SaveAccount(ctx context.Context, account models.Account) error
	GetCashFlow(tx uint32) (models.CashFlow, bool, error)
	SaveCashFlow(ctx context.Context, cf models.CashFlow) error
	// GetAccounts returns every account ordered by client.
	GetAccounts() ([]models.Account, error)
}

// SnapshotStore persists the final account rows of one run.
type SnapshotStore interface {
	SaveSnapshots(ctx context.Context, runID string, accounts []models.Account) error
}
