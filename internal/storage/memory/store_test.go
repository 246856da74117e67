package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/txn-ledger-replay/internal/models"
)

func TestMemoryLedgerStore_Accounts(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryLedgerStore()

	_, exists, err := store.GetAccount(1)
	require.NoError(t, err)
	assert.False(t, exists)

	for _, client := range []uint16{9, 1, 5} {
		require.NoError(t, store.SaveAccount(ctx, models.NewAccount(client)))
	}

	updated := models.NewAccount(5)
	updated.Locked = true
	require.NoError(t, store.SaveAccount(ctx, updated))

	accounts, err := store.GetAccounts()
	require.NoError(t, err)
	require.Len(t, accounts, 3)
	assert.Equal(t, []uint16{1, 5, 9}, []uint16{accounts[0].Client, accounts[1].Client, accounts[2].Client})
	assert.True(t, accounts[1].Locked)
}

func TestMemoryLedgerStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryLedgerStore()
	require.NoError(t, store.SaveCashFlow(ctx, models.CashFlow{Tx: 1, Client: 1, Amount: models.MustParseMoney("2")}))

	cf, exists, err := store.GetCashFlow(1)
	require.NoError(t, err)
	require.True(t, exists)
	cf.UnderDispute = true

	again, _, _ := store.GetCashFlow(1)
	assert.False(t, again.UnderDispute, "changes are only visible after SaveCashFlow")

	require.NoError(t, store.SaveCashFlow(ctx, cf))
	again, _, _ = store.GetCashFlow(1)
	assert.True(t, again.UnderDispute)
}
