package capgains

import "slices"

// Selection is the result of a minimum-capital-gains run: the records to
// sell, in the order they were accumulated (ascending gain ratio), plus the
// run totals.
type Selection struct {
	Target  Money    // requested net-of-tax amount
	TaxRate Quantity // flat tax rate applied to realized gains, in [0,1)

	Records          []SellRecord
	TotalAmount      Money
	TotalCapitalGain Money
}

// NetAmount returns the total sale amount reduced by the tax withheld on the
// total capital gain.
func (s *Selection) NetAmount() Money {
	return s.TotalAmount.Sub(s.TotalCapitalGain.Mul(s.TaxRate))
}

// Taxes returns the tax withheld on the total capital gain.
func (s *Selection) Taxes() Money {
	return s.TotalCapitalGain.Mul(s.TaxRate)
}

// Rate returns the tax rate as a display percentage.
func (s *Selection) Rate() Percent {
	return Percent(s.TaxRate.Mul(Q(100)).value.InexactFloat64())
}

// MinimumCapGains selects the lots to sell to raise 'target' net of tax,
// realizing as little capital gain as the greedy ranking allows.
//
// Lots are ranked by ascending gain ratio and accumulated in that order.
// Ties keep the lots' original relative order, and lots with an undefined
// gain ratio (zero sale amount) rank last. The first lot that pushes the
// net-of-tax running amount strictly above the target is split down to the
// smallest whole-share count that still reaches the target, when that count
// is less than the lot's own whole-share count.
//
// Lots with negative capital gains (losses) are ranked and accumulated like
// any other lot; there is no loss-harvesting logic. See the selling topic of
// the documentation for this known limitation.
//
// It returns a *MissingPriceError if any fund held by the account has no
// price, and an *InsufficientFundsError if the whole account, net of tax, is
// worth less than the target. No partial selection is returned on error.
func (a *Account) MinimumCapGains(prices *PriceTable, target Money, taxRate Quantity) (*Selection, error) {
	records, err := a.SellRecords(prices)
	if err != nil {
		return nil, err
	}

	// Rank lot indices by ascending gain ratio, stable on ties, undefined
	// ratios last in input order.
	ranking := make([]int, len(records))
	for i := range ranking {
		ranking[i] = i
	}
	slices.SortStableFunc(ranking, func(i, j int) int {
		ri, iok := records[i].GainRatio()
		rj, jok := records[j].GainRatio()
		switch {
		case iok && jok:
			return ri.Compare(rj)
		case iok:
			return -1
		case jok:
			return 1
		default:
			return 0
		}
	})

	sel := &Selection{Target: target, TaxRate: taxRate}
	var amount, capGains Money
	reached := false

	for _, i := range ranking {
		rec := records[i]

		// running values before this record
		preNet := amount.Sub(capGains.Mul(taxRate))

		amount = amount.Add(rec.Amount)
		capGains = capGains.Add(rec.CapitalGain)

		net := amount.Sub(capGains.Mul(taxRate))
		if !net.GreaterThan(target) {
			sel.Records = append(sel.Records, rec)
			continue
		}

		// This record crosses the target: see if selling some (not all) of
		// its shares is enough. Shares are only sold in whole numbers, so
		// take the smallest integer count whose net proceeds close the gap.
		x := rec.netAmount(taxRate).Div(rec.Shares) // net proceeds per share
		n := target.Sub(preNet).DivPrice(x).Floor().Add(Q(1))

		if n.LessThan(rec.Shares.Floor()) {
			sel.Records = append(sel.Records, rec.split(n))
		} else {
			sel.Records = append(sel.Records, rec)
		}
		reached = true
		break
	}

	if !reached {
		net := amount.Sub(capGains.Mul(taxRate))
		if net.LessThan(target) {
			return nil, &InsufficientFundsError{Target: target, Available: net}
		}
	}

	for _, rec := range sel.Records {
		sel.TotalAmount = sel.TotalAmount.Add(rec.Amount)
		sel.TotalCapitalGain = sel.TotalCapitalGain.Add(rec.CapitalGain)
	}
	return sel, nil
}
