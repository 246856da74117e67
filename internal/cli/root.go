package cli

import (
	"context"
	"errors"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sheikh-saqib/txn-ledger-replay/internal/config"
	"github.com/sheikh-saqib/txn-ledger-replay/internal/ingest"
	"github.com/sheikh-saqib/txn-ledger-replay/internal/ledger"
	"github.com/sheikh-saqib/txn-ledger-replay/internal/logging"
	"github.com/sheikh-saqib/txn-ledger-replay/internal/report"
	"github.com/sheikh-saqib/txn-ledger-replay/internal/storage/memory"
)

// NewRootCommand creates the ledger command.
func NewRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "ledger <path>",
		Short: "Replay a CSV of transactions and print the final accounts",
		Long: `Replay deposits, withdrawals, disputes, resolves and chargebacks in file
order and print one row per client: client, available, held, total, locked.

The whole file is validated before any account changes. Duplicate deposit or
withdrawal ids, and missing, negative or over-precise amounts, abort the run.

Exit codes:
  0 - Success
  1 - Input rejected by validation
  2 - Command error (file not found, malformed input, sink failure)

Environment (optional, also read from .env):
  LOG_LEVEL, LOG_FORMAT, LEDGER_OUTPUT_FORMAT, DATABASE_URL, KAFKA_BROKERS, KAFKA_TOPIC`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return WrapExitError(ExitCommandError, "invalid configuration", err)
			}
			return Run(cmd.Context(), cfg, args[0], cmd.OutOrStdout())
		},
	}
}

// Run replays the file at path and writes the final accounts to out.
func Run(ctx context.Context, cfg config.Config, path string, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to build logger", err)
	}
	defer logger.Sync() //nolint:errcheck

	runID := uuid.NewString()
	logger = logger.With(zap.String("run_id", runID))

	txs, err := ingest.ReadFile(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to read transactions", err)
	}
	logger.Debug("transactions loaded", zap.String("path", path), zap.Int("count", len(txs)))

	l := ledger.NewLedger(memory.NewMemoryLedgerStore(), logger)
	accounts, err := l.Run(ctx, txs)
	switch {
	case errors.Is(err, ledger.ErrValidation):
		return WrapExitError(ExitFailure, "transactions rejected", err)
	case err != nil:
		return WrapExitError(ExitFailure, "failed to process transactions", err)
	}

	if err := report.Write(out, cfg.Output.Format, accounts); err != nil {
		return WrapExitError(ExitCommandError, "failed to write accounts", err)
	}

	if err := deliverSnapshots(ctx, cfg, runID, accounts, logger); err != nil {
		return WrapExitError(ExitCommandError, "failed to deliver snapshot", err)
	}
	return nil
}
