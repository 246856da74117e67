package models

// Account is the balance of one client.
// Total always equals Available + Held.
type Account struct {
	Client    uint16
	Available Money
	Held      Money
	Total     Money
	Locked    bool // set by a chargeback, never cleared
}

// NewAccount returns an empty, unlocked account.
func NewAccount(client uint16) Account {
	return Account{Client: client}
}

// Insert applies a deposit or withdrawal. A withdrawal larger than the
// available funds leaves the account untouched and reports false.
func (a *Account) Insert(cf CashFlow) bool {
	switch cf.Type {
	case CashFlowDeposit:
		a.Available = a.Available.Add(cf.Amount)
	case CashFlowWithdrawal:
		if !cf.Amount.LessThanOrEqual(a.Available) {
			return false
		}
		a.Available = a.Available.Sub(cf.Amount)
	default:
		return false
	}
	a.Total = a.Available.Add(a.Held)
	return true
}

// Dispute moves the cash flow amount from available to held.
func (a *Account) Dispute(cf *CashFlow) {
	a.Available = a.Available.Sub(cf.Amount)
	a.Held = a.Held.Add(cf.Amount)
	cf.UnderDispute = true
}

// Resolve releases a disputed amount back to available.
func (a *Account) Resolve(cf *CashFlow) {
	a.Held = a.Held.Sub(cf.Amount)
	a.Available = a.Available.Add(cf.Amount)
	cf.UnderDispute = false
}

// Chargeback removes a disputed amount and locks the account.
// Balances may go negative when the funds were withdrawn before the dispute.
func (a *Account) Chargeback(cf *CashFlow) {
	a.Held = a.Held.Sub(cf.Amount)
	a.Total = a.Total.Sub(cf.Amount)
	a.Locked = true
	cf.UnderDispute = false
}

// Balanced reports whether Total == Available + Held.
func (a Account) Balanced() bool {
	return a.Total.Equal(a.Available.Add(a.Held))
}
