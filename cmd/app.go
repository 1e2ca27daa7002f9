// Package cmd implements the CLI application to select the sales that
// minimize capital gains.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/capgains"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&sellCmd{}, "selection")
	c.Register(&summaryCmd{}, "selection")

	c.Register(&fetchCmd{}, "prices")

	c.Register(&explainCmd{}, "assistant")
	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var accountFile = flag.String("account-file", "account.csv", "Path to the account transaction history (CSV format)")
var pricesFile = flag.String("prices-file", "prices.csv", "Path to the fund price list (CSV format)")

// DecodeAccount loads the account from the app account file.
func DecodeAccount() (*capgains.Account, error) {
	f, err := os.Open(*accountFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open account file %q: %w", *accountFile, err)
	}
	defer f.Close()
	return capgains.DecodeAccount(f)
}

// DecodePrices loads the price table from the app prices file.
func DecodePrices() (*capgains.PriceTable, error) {
	f, err := os.Open(*pricesFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open price file %q: %w", *pricesFile, err)
	}
	defer f.Close()
	return capgains.DecodePriceTable(f)
}

// EncodePrices writes the price table to the app prices file.
func EncodePrices(prices *capgains.PriceTable) subcommands.ExitStatus {
	f, err := os.Create(*pricesFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating price file %q: %v\n", *pricesFile, err)
		return subcommands.ExitFailure
	}
	defer f.Close()

	if err := capgains.EncodePriceTable(f, prices); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing price file %q: %v\n", *pricesFile, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Successfully wrote prices to %s\n", *pricesFile)
	return subcommands.ExitSuccess
}
