package capgains

import "slices"

// Lot represents a single purchase of fund shares. It is immutable once
// created at ingestion.
type Lot struct {
	Date      Date     // purchase date
	Fund      string   // fund the shares belong to
	Shares    Quantity // number of shares purchased, may be fractional
	CostBasis Money    // purchase price per share
}

// Account holds the purchase lots of a single investment account.
type Account struct {
	lots  []Lot
	funds []string // distinct funds, in first-seen order
}

// NewAccount creates an account from purchase lots, keeping their order.
func NewAccount(lots ...Lot) *Account {
	a := &Account{lots: slices.Clone(lots)}
	for _, lot := range lots {
		if !slices.Contains(a.funds, lot.Fund) {
			a.funds = append(a.funds, lot.Fund)
		}
	}
	return a
}

// Lots returns the account's purchase lots in their original order.
func (a *Account) Lots() []Lot { return slices.Clone(a.lots) }

// Funds returns the distinct funds held by the account, in first-seen order.
func (a *Account) Funds() []string { return slices.Clone(a.funds) }
