package ledger

import (
	"github.com/sheikh-saqib/txn-ledger-replay/internal/models"
)

// ValidateTransactions checks the whole batch up front and returns the first
// violation in input order:
//   - deposit and withdrawal ids are pairwise unique
//   - deposit and withdrawal amounts are present, non-negative, scale <= 4
//
// Dispute, resolve and chargeback rows reference existing ids and are
// checked when applied instead.
func ValidateTransactions(txs []models.Transaction) error {
	seen := make(map[uint32]struct{}, len(txs))

	for _, tx := range txs {
		if !tx.Type.MovesMoney() {
			continue
		}
		if _, dup := seen[tx.Tx]; dup {
			return &ValidationError{Tx: tx.Tx, Reason: ReasonDuplicateID}
		}
		seen[tx.Tx] = struct{}{}

		if err := validateAmount(tx); err != nil {
			return err
		}
	}
	return nil
}

func validateAmount(tx models.Transaction) error {
	switch {
	case tx.Amount == nil:
		return &ValidationError{Tx: tx.Tx, Reason: ReasonMissingAmount}
	case tx.Amount.Scale() > models.MaxScale:
		return &ValidationError{Tx: tx.Tx, Reason: ReasonScale}
	case tx.Amount.IsNegative():
		return &ValidationError{Tx: tx.Tx, Reason: ReasonNegativeAmount}
	}
	return nil
}
