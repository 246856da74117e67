package memory

import (
	"context"
	"sort"

	interfaces "github.com/sheikh-saqib/txn-ledger-replay/internal/interfaces" // interface LedgerStore
	"github.com/sheikh-saqib/txn-ledger-replay/internal/models"
)

// MemoryLedgerStore is an in-memory implementation of interfaces.LedgerStore.
// A run owns its store exclusively, so no locking is done.
type MemoryLedgerStore struct {
	accounts  map[uint16]models.Account  // client -> account
	cashFlows map[uint32]models.CashFlow // tx -> deposit or withdrawal
}

// NewMemoryLedgerStore creates and returns an empty MemoryLedgerStore
func NewMemoryLedgerStore() *MemoryLedgerStore {
	return &MemoryLedgerStore{
		accounts:  make(map[uint16]models.Account),
		cashFlows: make(map[uint32]models.CashFlow),
	}
}

func (m *MemoryLedgerStore) GetAccount(client uint16) (models.Account, bool, error) {
	account, exists := m.accounts[client]
	return account, exists, nil
}

// SaveAccount inserts or replaces the account keyed by its client.
func (m *MemoryLedgerStore) SaveAccount(ctx context.Context, account models.Account) error {
	m.accounts[account.Client] = account
	return nil
}

func (m *MemoryLedgerStore) GetCashFlow(tx uint32) (models.CashFlow, bool, error) {
	cf, exists := m.cashFlows[tx]
	return cf, exists, nil
}

// SaveCashFlow inserts or replaces the cash flow keyed by its tx.
func (m *MemoryLedgerStore) SaveCashFlow(ctx context.Context, cf models.CashFlow) error {
	m.cashFlows[cf.Tx] = cf
	return nil
}

// GetAccounts returns a copy of all accounts sorted by client, so external
// code can't modify internal state and output order is stable.
func (m *MemoryLedgerStore) GetAccounts() ([]models.Account, error) {
	result := make([]models.Account, 0, len(m.accounts))
	for _, account := range m.accounts {
		result = append(result, account)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Client < result[j].Client })
	return result, nil
}

// Compile-time check: ensure MemoryLedgerStore implements LedgerStore interface
var _ interfaces.LedgerStore = (*MemoryLedgerStore)(nil)
