package capgains

import (
	"encoding/csv"
	"fmt"
	"io"
)

// DecodePriceTable decodes a fund price list from its CSV format.
//
// The expected header is
//
//	Fund,Share price
//
// When a fund appears more than once, the last row wins.
func DecodePriceTable(r io.Reader) (*PriceTable, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read price list header: %w", err)
	}
	cols, err := columnIndex(header, colFund, colSharePrice)
	if err != nil {
		return nil, fmt.Errorf("invalid price file: %w", err)
	}

	prices := NewPriceTable()
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("price list line %d: %w", line, err)
		}
		price, err := parseUSD(record[cols[colSharePrice]])
		if err != nil {
			return nil, fmt.Errorf("price list line %d: %w", line, err)
		}
		prices.Set(record[cols[colFund]], price)
	}
	return prices, nil
}

// EncodePriceTable encodes the price table to the CSV price list format,
// funds in lexical order.
func EncodePriceTable(w io.Writer, prices *PriceTable) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{colFund, colSharePrice}); err != nil {
		return err
	}
	for _, fund := range prices.Funds() {
		price, _ := prices.Price(fund)
		if err := writer.Write([]string{fund, price.String()}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
