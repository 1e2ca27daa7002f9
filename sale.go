package capgains

// SellRecord holds the figures derived from selling the shares of one lot at
// the current fund price. Records live for the duration of one selection run;
// a partial record (whole-share split of a lot) carries a reduced share count
// with Amount and CapitalGain recomputed for it.
type SellRecord struct {
	Date        Date     // purchase date of the lot
	Fund        string   // fund the shares belong to
	Shares      Quantity // number of shares to sell
	CostBasis   Money    // purchase price per share
	Price       Money    // current price per share
	Amount      Money    // Price * Shares
	CapitalGain Money    // (Price - CostBasis) * Shares
}

// newSellRecord derives the sale figures for a whole lot at the given price.
func newSellRecord(lot Lot, price Money) SellRecord {
	return SellRecord{
		Date:        lot.Date,
		Fund:        lot.Fund,
		Shares:      lot.Shares,
		CostBasis:   lot.CostBasis,
		Price:       price,
		Amount:      price.Mul(lot.Shares),
		CapitalGain: price.Sub(lot.CostBasis).Mul(lot.Shares),
	}
}

// split returns a partial copy of the record selling only n shares.
func (r SellRecord) split(n Quantity) SellRecord {
	r.Shares = n
	r.Amount = r.Price.Mul(n)
	r.CapitalGain = r.Price.Sub(r.CostBasis).Mul(n)
	return r
}

// GainRatio returns the capital gain per unit of sale amount, the proxy for
// the tax efficiency of selling this record. The ratio is undefined when the
// sale amount is zero (zero shares or zero price); ok is false in that case.
func (r SellRecord) GainRatio() (ratio Quantity, ok bool) {
	if r.Amount.IsZero() {
		return Quantity{}, false
	}
	return r.CapitalGain.DivPrice(r.Amount), true
}

// netAmount returns the sale amount reduced by the tax withheld on the
// capital gain at the given flat rate.
func (r SellRecord) netAmount(taxRate Quantity) Money {
	return r.Amount.Sub(r.CapitalGain.Mul(taxRate))
}

// SellRecords derives the sale figures for every lot of the account.
//
// The whole distinct fund set is checked against the price table before any
// per-lot computation, so a *MissingPriceError is returned even for funds
// whose lots would not otherwise be touched. The account and the price table
// are not modified.
func (a *Account) SellRecords(prices *PriceTable) ([]SellRecord, error) {
	for _, fund := range a.funds {
		if _, ok := prices.Price(fund); !ok {
			return nil, &MissingPriceError{Fund: fund}
		}
	}

	records := make([]SellRecord, 0, len(a.lots))
	for _, lot := range a.lots {
		price, _ := prices.Price(lot.Fund)
		records = append(records, newSellRecord(lot, price))
	}
	return records, nil
}
