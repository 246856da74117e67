package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sheikh-saqib/txn-ledger-replay/internal/models"
)

func TestRead_TrimsFieldsAndAcceptsMissingAmounts(t *testing.T) {
	input := `type, client, tx, amount
deposit, 1, 1, 1.0
 Withdrawal ,2, 2, 2.5
dispute, 1, 1,
resolve,1,1
chargeback, 1, 1, 99
`
	txs, err := Read(strings.NewReader(input))
	require.NoError(t, err)
	require.Len(t, txs, 5)

	assert.Equal(t, models.Deposit, txs[0].Type)
	assert.Equal(t, uint16(1), txs[0].Client)
	assert.Equal(t, uint32(1), txs[0].Tx)
	require.NotNil(t, txs[0].Amount)
	assert.Equal(t, "1.0000", txs[0].Amount.String())
	assert.Equal(t, int32(1), txs[0].Amount.Scale())

	assert.Equal(t, models.Withdrawal, txs[1].Type)
	assert.Equal(t, uint16(2), txs[1].Client)
	assert.Equal(t, "2.5000", txs[1].Amount.String())

	assert.Equal(t, models.Dispute, txs[2].Type)
	assert.Nil(t, txs[2].Amount)
	assert.Equal(t, models.Resolve, txs[3].Type)
	assert.Nil(t, txs[3].Amount)
	assert.Equal(t, models.Chargeback, txs[4].Type)
	assert.Nil(t, txs[4].Amount, "amounts on chargeback rows are ignored")
}

func TestRead_MissingAmountStaysNil(t *testing.T) {
	txs, err := Read(strings.NewReader("type,client,tx,amount\ndeposit,1,1,\n"))
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Nil(t, txs[0].Amount)
}

func TestRead_Empty(t *testing.T) {
	txs, err := Read(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestRead_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"missing column", "type,client,amount\ndeposit,1,1\n", `header is missing column "tx"`},
		{"unknown type", "type,client,tx,amount\ntransfer,1,1,1\n", `line 2: unknown transaction type "transfer"`},
		{"client out of range", "type,client,tx,amount\ndeposit,70000,1,1\n", "line 2: invalid client"},
		{"bad tx", "type,client,tx,amount\ndeposit,1,abc,1\n", "line 2: invalid tx"},
		{"negative tx", "type,client,tx,amount\ndeposit,1,-1,1\n", "line 2: invalid tx"},
		{"bad amount", "type,client,tx,amount\ndeposit,1,1,1\ndeposit,1,2,ten\n", `line 3: tx 2: invalid amount "ten"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "txs.csv")
	require.NoError(t, os.WriteFile(path, []byte("type,client,tx,amount\ndeposit,3,4,5.5\n"), 0o644))

	txs, err := ReadFile(path)
	require.NoError(t, err)
	require.Len(t, txs, 1)
	assert.Equal(t, uint16(3), txs[0].Client)

	_, err = ReadFile(filepath.Join(t.TempDir(), "missing.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
