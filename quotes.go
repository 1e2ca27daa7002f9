package capgains

import (
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// quoteEndpoint serves a JSON object per ISIN with the latest traded values,
// e.g. {"isin":"IE00B4L5Y983","last":79.98,"bid":79.96,"bidsize":120,...}
var quoteEndpoint = "https://www.tradegate.de/refresh.php?isin="

// latestQuote fetches the latest traded price for one ISIN.
func latestQuote(client *http.Client, name, isin string) (float64, error) {
	var jobj any
	if err := jwget(client, quoteEndpoint+isin, &jobj); err != nil {
		return 0, fmt.Errorf("error retrieving %q: %w", name, err)
	}

	// last is the last transaction, moves slower than the bid, but the bid can be 0.
	jval, err := jsonpath.Get("$.last", jobj)
	if err != nil {
		return 0, fmt.Errorf("cannot read last value for %q: %w", name, err)
	}
	if s, ok := jval.(string); ok && s == "./." {
		// the endpoint shows an empty last this way, use the bid instead
		log.Println("'last' is empty, falling back to 'bid'")
		jval, err = jsonpath.Get("$.bid", jobj)
		if err != nil {
			return 0, fmt.Errorf("cannot read bid value for %q: %w", name, err)
		}
	}

	val, ok := jval.(float64)
	if !ok {
		// sometimes, this weird API returns the value as a string
		sval, ok := jval.(string)
		if !ok {
			return 0, fmt.Errorf("cannot read value from %q: neither a float nor a string", name)
		}
		sval = strings.ReplaceAll(sval, ",", ".")
		sval = strings.ReplaceAll(sval, " ", "")
		val, err = strconv.ParseFloat(sval, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot read value from %q: value is an invalid string %q: %w", name, sval, err)
		}
	}
	if val == 0 {
		// sometimes the bid is empty and returns 0
		return 0, fmt.Errorf("empty bid for %s no value to return", name)
	}
	return val, nil
}

// FetchPrices fetches the latest price of every fund in 'funds' (fund name
// to ISIN) and returns them as a price table. Responses are cached on disk
// for the day.
func FetchPrices(funds map[string]string) (*PriceTable, error) {
	client := daily()
	prices := NewPriceTable()
	for name, isin := range funds {
		val, err := latestQuote(client, name, isin)
		if err != nil {
			return nil, err
		}
		prices.Set(name, M(val, accountCurrency))
	}
	return prices, nil
}
