package capgains

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"
)

// this file handles the account transaction-history format: a CSV export
// with one row per purchase lot. Currency fields are dollar amounts, with an
// optional leading '$' and thousands separators.

// accountCurrency is the currency of all amounts in the data files.
const accountCurrency = "USD"

// column names of the account history CSV.
const (
	colDate       = "Date"
	colFund       = "Fund"
	colType       = "Transaction type"
	colShares     = "Shares transacted"
	colSharePrice = "Share price"
	colAmount     = "Amount"
)

// parseUSD parses a dollar amount like "$1,234.56" into Money.
func parseUSD(s string) (Money, error) {
	clean := strings.ReplaceAll(strings.Trim(strings.TrimSpace(s), "$"), ",", "")
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return Money{}, fmt.Errorf("invalid dollar amount %q: %w", s, err)
	}
	return M(d, accountCurrency), nil
}

// columnIndex maps the wanted column names to their position in the header.
func columnIndex(header []string, names ...string) (map[string]int, error) {
	index := make(map[string]int, len(names))
	for i, col := range header {
		index[strings.TrimSpace(col)] = i
	}
	for _, name := range names {
		if _, ok := index[name]; !ok {
			return nil, fmt.Errorf("missing column %q in header %q", name, strings.Join(header, ","))
		}
	}
	return index, nil
}

// DecodeAccount decodes an account from its CSV transaction history.
//
// The expected header is
//
//	Date,Fund,Transaction type,Shares transacted,Share price,Amount
//
// and every row becomes one purchase lot. The Amount column is a dependent
// field (share price times shares); it is validated but not stored.
func DecodeAccount(r io.Reader) (*Account, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read account header: %w", err)
	}
	cols, err := columnIndex(header, colDate, colFund, colType, colShares, colSharePrice, colAmount)
	if err != nil {
		return nil, fmt.Errorf("invalid account file: %w", err)
	}

	var lots []Lot
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("account line %d: %w", line, err)
		}

		date, err := ParseDate(record[cols[colDate]])
		if err != nil {
			return nil, fmt.Errorf("account line %d: %w", line, err)
		}
		shares, err := decimal.NewFromString(strings.TrimSpace(record[cols[colShares]]))
		if err != nil {
			return nil, fmt.Errorf("account line %d: invalid share count %q: %w", line, record[cols[colShares]], err)
		}
		price, err := parseUSD(record[cols[colSharePrice]])
		if err != nil {
			return nil, fmt.Errorf("account line %d: %w", line, err)
		}
		if _, err := parseUSD(record[cols[colAmount]]); err != nil {
			return nil, fmt.Errorf("account line %d: %w", line, err)
		}

		lots = append(lots, Lot{
			Date:      date,
			Fund:      record[cols[colFund]],
			Shares:    Q(shares),
			CostBasis: price,
		})
	}
	return NewAccount(lots...), nil
}
