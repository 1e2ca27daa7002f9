package capgains

import "fmt"

// MissingPriceError reports that a fund held by the account has no entry in
// the price table. It is detected for the whole account before any per-lot
// computation.
type MissingPriceError struct {
	Fund string
}

func (e *MissingPriceError) Error() string {
	return fmt.Sprintf("missing price for fund: %s", e.Fund)
}

// InsufficientFundsError reports that selling the entire account would not
// raise the requested target net of tax.
type InsufficientFundsError struct {
	Target    Money // requested net-of-tax amount
	Available Money // net-of-tax value of the whole account
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: account is worth %s net of tax, target is %s", e.Available, e.Target)
}
