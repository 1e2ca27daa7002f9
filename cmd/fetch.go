package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strings"

	"github.com/etnz/capgains"
	"github.com/google/subcommands"
)

// fundsFlag collects repeated -fund NAME=ISIN flags.
type fundsFlag map[string]string

func (f fundsFlag) String() string {
	var pairs []string
	for name, isin := range f {
		pairs = append(pairs, name+"="+isin)
	}
	return strings.Join(pairs, ",")
}

func (f fundsFlag) Set(value string) error {
	name, isin, ok := strings.Cut(value, "=")
	if !ok || name == "" || isin == "" {
		return fmt.Errorf("want NAME=ISIN, got %q", value)
	}
	f[name] = isin
	return nil
}

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	funds fundsFlag
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "fetch latest fund prices and update the price file" }
func (*fetchCmd) Usage() string {
	return `cgs fetch -fund NAME=ISIN [-fund NAME=ISIN ...]

  Fetches the latest traded price of each fund by ISIN and updates the price
  file. Prices already in the file for other funds are kept.

Usage Examples:
$ cgs fetch -fund "World Stock Index"=IE00B4L5Y983

`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	c.funds = make(fundsFlag)
	f.Var(c.funds, "fund", "Fund to fetch as NAME=ISIN (repeatable)")
}

func (c *fetchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if len(c.funds) == 0 {
		fmt.Fprintln(os.Stderr, "at least one -fund NAME=ISIN is required")
		return subcommands.ExitUsageError
	}

	fetched, err := capgains.FetchPrices(c.funds)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching prices: %v\n", err)
		return subcommands.ExitFailure
	}

	// keep prices of funds not fetched this time
	prices, err := DecodePrices()
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, price file does not exist, creating a new one instead")
		prices, err = capgains.NewPriceTable(), nil
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return subcommands.ExitFailure
	}
	for _, fund := range fetched.Funds() {
		price, _ := fetched.Price(fund)
		prices.Set(fund, price)
	}

	return EncodePrices(prices)
}
