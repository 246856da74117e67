package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/sheikh-saqib/txn-ledger-replay/internal/config"
	"github.com/sheikh-saqib/txn-ledger-replay/internal/events/kafka"
	interfaces "github.com/sheikh-saqib/txn-ledger-replay/internal/interfaces"
	"github.com/sheikh-saqib/txn-ledger-replay/internal/models"
	"github.com/sheikh-saqib/txn-ledger-replay/internal/models/events"
	"github.com/sheikh-saqib/txn-ledger-replay/internal/storage/postgres"
)

// deliverSnapshots hands the final accounts to every configured sink.
func deliverSnapshots(ctx context.Context, cfg config.Config, runID string, accounts []models.Account, logger *zap.Logger) error {
	if cfg.DatabaseURL != "" {
		store, err := postgres.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := saveSnapshots(ctx, store, runID, accounts); err != nil {
			return err
		}
		logger.Info("snapshot stored in postgres", zap.Int("accounts", len(accounts)))
	}

	if len(cfg.Kafka.Brokers) > 0 {
		publisher := kafka.NewPublisher(cfg.Kafka.Brokers, cfg.Kafka.Topic)
		defer publisher.Close()

		if err := publishSnapshots(ctx, publisher, runID, accounts, time.Now().UTC()); err != nil {
			return err
		}
		logger.Info("snapshot published to kafka",
			zap.String("topic", cfg.Kafka.Topic),
			zap.Int("accounts", len(accounts)),
		)
	}
	return nil
}

func saveSnapshots(ctx context.Context, store interfaces.SnapshotStore, runID string, accounts []models.Account) error {
	if err := store.SaveSnapshots(ctx, runID, accounts); err != nil {
		return fmt.Errorf("failed to store snapshot: %w", err)
	}
	return nil
}

// publishSnapshots sends one AccountSnapshotted event per account, keyed by client.
func publishSnapshots(ctx context.Context, publisher interfaces.EventPublisher, runID string, accounts []models.Account, at time.Time) error {
	for _, account := range accounts {
		event := events.NewAccountSnapshotted(runID, account, at)
		key := strconv.FormatUint(uint64(account.Client), 10)
		if err := publisher.Publish(ctx, key, event); err != nil {
			return fmt.Errorf("failed to publish snapshot for client %d: %w", account.Client, err)
		}
	}
	return nil
}
