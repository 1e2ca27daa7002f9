// Package renderer renders capgains reports as markdown.
package renderer

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/capgains"
)

// SelectionMarkdown renders a sell selection to a markdown string.
// Records are presented most-recent-purchase-first; the selection order
// itself (ascending gain ratio) is not a presentation concern.
func SelectionMarkdown(sel *capgains.Selection) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Selling %s worth of shares\n\n", sel.Target)
	fmt.Fprintf(&b, "Selling the following records:\n\n")

	fmt.Fprintln(&b, "| Date | Fund | Amount | Cap. Gains | CG Ratio | Shares |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|")

	records := slices.Clone(sel.Records)
	slices.SortStableFunc(records, func(a, b capgains.SellRecord) int {
		return b.Date.Compare(a.Date)
	})

	for _, rec := range records {
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			rec.Date,
			rec.Fund,
			rec.Amount,
			rec.CapitalGain.SignedString(),
			ratioString(rec),
			sharesString(rec.Shares),
		)
	}
	fmt.Fprintf(&b, "| **%s** | | **%s** | **%s** | | |\n",
		"Total",
		sel.TotalAmount,
		sel.TotalCapitalGain.SignedString(),
	)

	if !sel.TaxRate.IsZero() {
		fmt.Fprintf(&b, "\nApplying a flat tax rate of %s on realized gains.\n", sel.Rate())
		fmt.Fprintf(&b, "\nTaxes: %s\n", sel.Taxes())
		fmt.Fprintf(&b, "\nNet amount: %s\n", sel.NetAmount())
	}
	return b.String()
}

// ratioString formats the gain ratio, "-" when undefined.
func ratioString(rec capgains.SellRecord) string {
	ratio, ok := rec.GainRatio()
	if !ok {
		return "-"
	}
	return ratio.Round(3).String()
}

// sharesString formats a share count, marking whole-number counts as they
// are not too common in fund transaction histories.
func sharesString(shares capgains.Quantity) string {
	if shares.IsInteger() {
		return fmt.Sprintf("%s [whole]", shares)
	}
	return shares.Round(3).String()
}
