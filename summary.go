package capgains

import (
	"slices"
	"strings"
)

// FundSummary aggregates the holdings of one fund at current prices.
type FundSummary struct {
	Fund        string
	Lots        int      // number of purchase lots
	Shares      Quantity // total position
	Price       Money    // current price per share
	MarketValue Money    // Price * Shares
	CostBasis   Money    // total purchase cost
	Gain        Money    // MarketValue - CostBasis
}

// Summary is an overview of the whole account at current prices.
type Summary struct {
	Funds            []FundSummary
	TotalMarketValue Money
	TotalCostBasis   Money
	TotalGain        Money
}

// NewSummary aggregates the account's lots per fund at current prices.
// Funds are listed in lexical order. Like a selection run, it fails with a
// *MissingPriceError when any held fund lacks a price.
func (a *Account) NewSummary(prices *PriceTable) (*Summary, error) {
	records, err := a.SellRecords(prices)
	if err != nil {
		return nil, err
	}

	byFund := make(map[string]*FundSummary)
	summary := &Summary{}
	for _, rec := range records {
		fs, ok := byFund[rec.Fund]
		if !ok {
			fs = &FundSummary{Fund: rec.Fund, Price: rec.Price}
			byFund[rec.Fund] = fs
		}
		cost := rec.CostBasis.Mul(rec.Shares)
		fs.Lots++
		fs.Shares = fs.Shares.Add(rec.Shares)
		fs.MarketValue = fs.MarketValue.Add(rec.Amount)
		fs.CostBasis = fs.CostBasis.Add(cost)
		fs.Gain = fs.Gain.Add(rec.CapitalGain)

		summary.TotalMarketValue = summary.TotalMarketValue.Add(rec.Amount)
		summary.TotalCostBasis = summary.TotalCostBasis.Add(cost)
		summary.TotalGain = summary.TotalGain.Add(rec.CapitalGain)
	}

	for _, fs := range byFund {
		summary.Funds = append(summary.Funds, *fs)
	}
	slices.SortFunc(summary.Funds, func(a, b FundSummary) int {
		return strings.Compare(a.Fund, b.Fund)
	})
	return summary, nil
}
