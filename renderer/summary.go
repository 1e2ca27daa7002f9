package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/capgains"
)

// SummaryMarkdown renders an account summary to a markdown string.
func SummaryMarkdown(summary *capgains.Summary) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Account Summary\n\n")
	fmt.Fprintln(&b, "| Fund | Lots | Shares | Price | Market Value | Cost Basis | Gain |")
	fmt.Fprintln(&b, "|:---|---:|---:|---:|---:|---:|---:|")

	for _, fs := range summary.Funds {
		fmt.Fprintf(&b, "| %s | %d | %s | %s | %s | %s | %s |\n",
			fs.Fund,
			fs.Lots,
			fs.Shares.Round(3),
			fs.Price,
			fs.MarketValue,
			fs.CostBasis,
			fs.Gain.SignedString(),
		)
	}
	fmt.Fprintf(&b, "| **%s** | | | | **%s** | **%s** | **%s** |\n",
		"Total",
		summary.TotalMarketValue,
		summary.TotalCostBasis,
		summary.TotalGain.SignedString(),
	)
	return b.String()
}
