package capgains

import (
	"slices"
	"strings"
)

// PriceTable maps funds to their current per-share price. It is supplied
// once per run and read-only for the selection.
type PriceTable struct {
	prices map[string]Money
}

// NewPriceTable returns an empty price table.
func NewPriceTable() *PriceTable {
	return &PriceTable{prices: make(map[string]Money)}
}

// Set records the current per-share price for a fund, overriding any
// previous value.
func (p *PriceTable) Set(fund string, price Money) {
	p.prices[fund] = price
}

// Price returns the current per-share price of a fund.
func (p *PriceTable) Price(fund string) (Money, bool) {
	price, ok := p.prices[fund]
	return price, ok
}

// Funds returns the funds with a known price, sorted.
func (p *PriceTable) Funds() []string {
	funds := make([]string, 0, len(p.prices))
	for fund := range p.prices {
		funds = append(funds, fund)
	}
	slices.SortFunc(funds, strings.Compare)
	return funds
}

// Len returns the number of priced funds.
func (p *PriceTable) Len() int { return len(p.prices) }
