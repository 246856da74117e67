package events

import (
	"time"

	"github.com/sheikh-saqib/txn-ledger-replay/internal/models"
)

// AccountSnapshotted is published once per account at the end of a run.
type AccountSnapshotted struct {
	RunID      string       `json:"run_id"`
	Client     uint16       `json:"client"`
	Available  models.Money `json:"available"`
	Held       models.Money `json:"held"`
	Total      models.Money `json:"total"`
	Locked     bool         `json:"locked"`
	OccurredAt time.Time    `json:"occurred_at"`
}

// NewAccountSnapshotted builds the event for one final account row.
func NewAccountSnapshotted(runID string, account models.Account, at time.Time) AccountSnapshotted {
	return AccountSnapshotted{
		RunID:      runID,
		Client:     account.Client,
		Available:  account.Available,
		Held:       account.Held,
		Total:      account.Total,
		Locked:     account.Locked,
		OccurredAt: at,
	}
}
