package capgains

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// buy is a helper for test to create a purchase lot from const
func buy(day, fund string, shares, basis float64) Lot {
	return Lot{Date: MustParse(day), Fund: fund, Shares: Q(shares), CostBasis: USD(basis)}
}

// priced is a helper for test to create a price table from fund/price pairs
func priced(pairs ...any) *PriceTable {
	prices := NewPriceTable()
	for i := 0; i < len(pairs); i += 2 {
		prices.Set(pairs[i].(string), USD(pairs[i+1].(float64)))
	}
	return prices
}
