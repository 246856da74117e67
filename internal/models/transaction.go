package models

import (
	"fmt"
	"strings"
)

// TransactionType is the kind of an input event.
type TransactionType int

const (
	Deposit TransactionType = iota + 1
	Withdrawal
	Dispute
	Resolve
	Chargeback
)

func (t TransactionType) String() string {
	switch t {
	case Deposit:
		return "deposit"
	case Withdrawal:
		return "withdrawal"
	case Dispute:
		return "dispute"
	case Resolve:
		return "resolve"
	case Chargeback:
		return "chargeback"
	default:
		return fmt.Sprintf("TransactionType(%d)", int(t))
	}
}

// ParseTransactionType matches the lowercase names case-insensitively.
func ParseTransactionType(s string) (TransactionType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "deposit":
		return Deposit, nil
	case "withdrawal":
		return Withdrawal, nil
	case "dispute":
		return Dispute, nil
	case "resolve":
		return Resolve, nil
	case "chargeback":
		return Chargeback, nil
	}
	return 0, fmt.Errorf("unknown transaction type %q", s)
}

// MovesMoney reports whether events of this type create a cash flow.
func (t TransactionType) MovesMoney() bool {
	return t == Deposit || t == Withdrawal
}

// Transaction is one input event, in arrival order.
type Transaction struct {
	Type   TransactionType
	Client uint16
	Tx     uint32
	Amount *Money // set only when the input carried one
}
