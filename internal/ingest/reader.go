package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sheikh-saqib/txn-ledger-replay/internal/models"
)

var requiredColumns = []string{"type", "client", "tx"}

// ReadFile reads every transaction from the CSV file at path.
func ReadFile(path string) ([]models.Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open input %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses a header row (type, client, tx, amount) followed by one event
// per row. Whitespace around fields is trimmed and the amount column may be
// empty or missing for rows that do not move money.
func Read(r io.Reader) ([]models.Transaction, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	columns, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	var txs []models.Transaction
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)
		if isBlank(record) {
			continue
		}

		tx, err := parseRecord(record, columns)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

func indexColumns(header []string) (map[string]int, error) {
	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range requiredColumns {
		if _, ok := columns[name]; !ok {
			return nil, fmt.Errorf("header is missing column %q", name)
		}
	}
	return columns, nil
}

func field(record []string, columns map[string]int, name string) string {
	i, ok := columns[name]
	if !ok || i >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[i])
}

func parseRecord(record []string, columns map[string]int) (models.Transaction, error) {
	txType, err := models.ParseTransactionType(field(record, columns, "type"))
	if err != nil {
		return models.Transaction{}, err
	}

	client, err := strconv.ParseUint(field(record, columns, "client"), 10, 16)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid client: %w", err)
	}

	id, err := strconv.ParseUint(field(record, columns, "tx"), 10, 32)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid tx: %w", err)
	}

	tx := models.Transaction{
		Type:   txType,
		Client: uint16(client),
		Tx:     uint32(id),
	}

	// Amounts on dispute, resolve and chargeback rows are ignored.
	if raw := field(record, columns, "amount"); raw != "" && txType.MovesMoney() {
		amount, err := models.ParseMoney(raw)
		if err != nil {
			return models.Transaction{}, fmt.Errorf("tx %d: %w", tx.Tx, err)
		}
		tx.Amount = &amount
	}
	return tx, nil
}

func isBlank(record []string) bool {
	for _, f := range record {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
