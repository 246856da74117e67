package models

// CashFlowType is the kind of money movement a cash flow records.
type CashFlowType int

const (
	CashFlowDeposit CashFlowType = iota + 1
	CashFlowWithdrawal
)

func (t CashFlowType) String() string {
	if t == CashFlowWithdrawal {
		return "withdrawal"
	}
	return "deposit"
}

// CashFlow is an admitted deposit or withdrawal, kept so later
// disputes, resolves and chargebacks can reference it by Tx.
type CashFlow struct {
	Type         CashFlowType
	Client       uint16 // owning client
	Tx           uint32 // globally unique among deposits and withdrawals
	Amount       Money
	UnderDispute bool // toggled only by dispute, resolve and chargeback
}
