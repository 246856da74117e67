package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/sheikh-saqib/txn-ledger-replay/internal/models"
)

// Output formats.
const (
	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{FormatCSV, FormatJSON, FormatYAML}

var header = []string{"client", "available", "held", "total", "locked"}

// Row is one output line. Amounts render with exactly four decimals.
type Row struct {
	Client    uint16       `json:"client" yaml:"client"`
	Available models.Money `json:"available" yaml:"available"`
	Held      models.Money `json:"held" yaml:"held"`
	Total     models.Money `json:"total" yaml:"total"`
	Locked    bool         `json:"locked" yaml:"locked"`
}

func NewRow(a models.Account) Row {
	return Row{
		Client:    a.Client,
		Available: a.Available,
		Held:      a.Held,
		Total:     a.Total,
		Locked:    a.Locked,
	}
}

// Write renders accounts to w in the given format, keeping their order.
func Write(w io.Writer, format string, accounts []models.Account) error {
	rows := make([]Row, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, NewRow(a))
	}

	switch format {
	case FormatCSV, "":
		return writeCSV(w, rows)
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rows); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("invalid format %q: must be one of %v", format, ValidFormats)
	}
}

func writeCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, r := range rows {
		record := []string{
			strconv.FormatUint(uint64(r.Client), 10),
			r.Available.String(),
			r.Held.String(),
			r.Total.String(),
			strconv.FormatBool(r.Locked),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
