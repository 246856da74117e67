package ledger

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	interfaces "github.com/sheikh-saqib/txn-ledger-replay/internal/interfaces"
	"github.com/sheikh-saqib/txn-ledger-replay/internal/models"
)

// Ledger replays events against the accounts and cash flows held in its store.
// It is not safe for concurrent use; one run owns one Ledger.
type Ledger struct {
	store  interfaces.LedgerStore // accounts and cash flows of the run
	logger *zap.Logger
}

// NewLedger creates a Ledger over an empty store.
// A nil logger discards warnings.
func NewLedger(store interfaces.LedgerStore, logger *zap.Logger) *Ledger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Ledger{
		store:  store,
		logger: logger,
	}
}

// Run validates the batch and, only if it is valid, applies every event in
// order. It returns the final accounts sorted by client.
func (l *Ledger) Run(ctx context.Context, txs []models.Transaction) ([]models.Account, error) {
	if err := ValidateTransactions(txs); err != nil {
		return nil, err
	}

	for _, tx := range txs {
		if err := l.PostTransaction(ctx, tx); err != nil {
			return nil, err
		}
	}

	return l.store.GetAccounts()
}

// PostTransaction applies one event. Events that reference an unknown or
// foreign tx, that are in the wrong dispute state, or that target a locked
// account are skipped with a warning and return nil.
func (l *Ledger) PostTransaction(ctx context.Context, tx models.Transaction) error {
	account, err := l.loadAccount(ctx, tx.Client)
	if err != nil {
		return err
	}

	if account.Locked {
		l.skip(tx, "received a request for a locked account")
		return nil
	}

	switch tx.Type {
	case models.Deposit, models.Withdrawal:
		return l.postCashFlow(ctx, account, tx)
	case models.Dispute:
		return l.dispute(ctx, account, tx)
	case models.Resolve:
		return l.settle(ctx, account, tx, (*models.Account).Resolve)
	case models.Chargeback:
		return l.settle(ctx, account, tx, (*models.Account).Chargeback)
	default:
		return fmt.Errorf("tx %d: unsupported transaction type %v", tx.Tx, tx.Type)
	}
}

// loadAccount returns the client's account, creating it on first reference.
func (l *Ledger) loadAccount(ctx context.Context, client uint16) (models.Account, error) {
	account, exists, err := l.store.GetAccount(client)
	if err != nil {
		return models.Account{}, err
	}
	if exists {
		return account, nil
	}

	account = models.NewAccount(client)
	if err := l.store.SaveAccount(ctx, account); err != nil {
		return models.Account{}, err
	}
	return account, nil
}

func (l *Ledger) postCashFlow(ctx context.Context, account models.Account, tx models.Transaction) error {
	if _, exists, err := l.store.GetCashFlow(tx.Tx); err != nil {
		return err
	} else if exists {
		return &ValidationError{Tx: tx.Tx, Reason: ReasonDuplicateID}
	}

	cf, err := newCashFlow(tx)
	if err != nil {
		return err
	}
	if err := l.store.SaveCashFlow(ctx, cf); err != nil {
		return err
	}

	stored, exists, err := l.store.GetCashFlow(tx.Tx)
	if err != nil {
		return err
	}
	if !exists {
		l.logger.Error("cash flow missing right after it was recorded",
			zap.Uint32("tx", tx.Tx),
			zap.Uint16("client", tx.Client),
		)
		return ErrInternal
	}

	// The cash flow stays recorded even when a withdrawal is refused.
	if !account.Insert(stored) {
		l.skip(tx, "not enough available funds to perform a withdrawal")
		return nil
	}
	return l.store.SaveAccount(ctx, account)
}

func (l *Ledger) dispute(ctx context.Context, account models.Account, tx models.Transaction) error {
	cf, exists, err := l.store.GetCashFlow(tx.Tx)
	if err != nil {
		return err
	}

	switch {
	case !exists || cf.Client != tx.Client:
		l.skip(tx, "dispute for a non-existing transaction or related to wrong client")
		return nil
	case cf.UnderDispute:
		l.skip(tx, "transaction is already under dispute")
		return nil
	}

	account.Dispute(&cf)
	return l.save(ctx, account, cf)
}

// settle ends a dispute with either a resolve or a chargeback.
func (l *Ledger) settle(ctx context.Context, account models.Account, tx models.Transaction, apply func(*models.Account, *models.CashFlow)) error {
	cf, exists, err := l.store.GetCashFlow(tx.Tx)
	if err != nil {
		return err
	}

	switch {
	case !exists:
		l.skip(tx, "transaction does not exist")
		return nil
	case cf.Client != tx.Client || !cf.UnderDispute:
		l.skip(tx, "transaction is not under dispute or related to wrong client")
		return nil
	}

	apply(&account, &cf)
	return l.save(ctx, account, cf)
}

// save writes both sides of a dispute transition before the next event.
func (l *Ledger) save(ctx context.Context, account models.Account, cf models.CashFlow) error {
	if err := l.store.SaveCashFlow(ctx, cf); err != nil {
		return err
	}
	return l.store.SaveAccount(ctx, account)
}

func (l *Ledger) skip(tx models.Transaction, reason string) {
	l.logger.Warn("ignoring transaction",
		zap.Uint32("tx", tx.Tx),
		zap.Uint16("client", tx.Client),
		zap.Stringer("type", tx.Type),
		zap.String("reason", reason),
	)
}

func newCashFlow(tx models.Transaction) (models.CashFlow, error) {
	if err := validateAmount(tx); err != nil {
		return models.CashFlow{}, err
	}

	cfType := models.CashFlowDeposit
	if tx.Type == models.Withdrawal {
		cfType = models.CashFlowWithdrawal
	}

	return models.CashFlow{
		Type:   cfType,
		Client: tx.Client,
		Tx:     tx.Tx,
		Amount: *tx.Amount,
	}, nil
}
