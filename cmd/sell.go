package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/capgains"
	"github.com/etnz/capgains/renderer"
	"github.com/google/subcommands"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	target float64
	rate   float64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "select the lots to sell to minimize capital gains" }
func (*sellCmd) Usage() string {
	return `cgs sell -t <target> [-r <tax_rate>]

  Selects the purchase lots to sell to raise the target amount, net of tax,
  while realizing as little capital gain as possible.

Usage Examples:
# Raise $10,000 with a 15% flat tax on realized gains.
$ cgs sell -t 10000 -r 0.15

`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.target, "t", 0, "Target amount to raise, net of tax")
	f.Float64Var(&c.rate, "r", 0, "Flat tax rate applied to realized capital gains, in [0,1)")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sel, status := runSelection(c.target, c.rate)
	if status != subcommands.ExitSuccess {
		return status
	}
	printMarkdown(renderer.SelectionMarkdown(sel))
	return subcommands.ExitSuccess
}

// runSelection loads the app files and runs the selection; it is shared by
// the sell and explain subcommands.
func runSelection(target, rate float64) (*capgains.Selection, subcommands.ExitStatus) {
	if target <= 0 {
		fmt.Fprintln(os.Stderr, "-t target must be a positive amount")
		return nil, subcommands.ExitUsageError
	}
	if rate < 0 || rate >= 1 {
		fmt.Fprintln(os.Stderr, "-r tax rate must be in [0,1)")
		return nil, subcommands.ExitUsageError
	}

	account, err := DecodeAccount()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading account: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	prices, err := DecodePrices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading prices: %v\n", err)
		return nil, subcommands.ExitFailure
	}

	sel, err := account.MinimumCapGains(prices, capgains.M(target, "USD"), capgains.Q(rate))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, subcommands.ExitFailure
	}
	return sel, subcommands.ExitSuccess
}
