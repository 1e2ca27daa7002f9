package renderer

import (
	"strings"
	"testing"

	"github.com/etnz/capgains"
)

func usd(v float64) capgains.Money { return capgains.M(v, "USD") }

func testSelection(t *testing.T, target float64, rate float64) *capgains.Selection {
	t.Helper()
	account := capgains.NewAccount(
		capgains.Lot{Date: capgains.MustParse("2019-01-10"), Fund: "F", Shares: capgains.Q(10), CostBasis: usd(50)},
		capgains.Lot{Date: capgains.MustParse("2020-03-05"), Fund: "F", Shares: capgains.Q(5.5), CostBasis: usd(80)},
	)
	prices := capgains.NewPriceTable()
	prices.Set("F", usd(100))

	sel, err := account.MinimumCapGains(prices, usd(target), capgains.Q(rate))
	if err != nil {
		t.Fatalf("MinimumCapGains() error = %v", err)
	}
	return sel
}

func TestSelectionMarkdown(t *testing.T) {
	md := SelectionMarkdown(testSelection(t, 650, 0))

	// most-recent-purchase-first: the 2020 lot row comes before the 2019 one
	i2020 := strings.Index(md, "2020-03-05")
	i2019 := strings.Index(md, "2019-01-10")
	if i2020 < 0 || i2019 < 0 || i2020 > i2019 {
		t.Errorf("records are not most-recent-first:\n%s", md)
	}

	// the split lot sells a whole number of shares
	if !strings.Contains(md, "[whole]") {
		t.Errorf("whole-share marker missing:\n%s", md)
	}

	// no tax footer at rate 0
	if strings.Contains(md, "Taxes:") {
		t.Errorf("unexpected tax footer at rate 0:\n%s", md)
	}

	if !strings.Contains(md, "**Total**") {
		t.Errorf("totals row missing:\n%s", md)
	}
}

func TestSelectionMarkdown_TaxFooter(t *testing.T) {
	sel := testSelection(t, 650, 0.15)
	md := SelectionMarkdown(sel)

	if !strings.Contains(md, "15.00%") {
		t.Errorf("tax rate line missing:\n%s", md)
	}
	if !strings.Contains(md, "Taxes: "+sel.Taxes().String()) {
		t.Errorf("tax footer missing:\n%s", md)
	}
	if !strings.Contains(md, "Net amount: "+sel.NetAmount().String()) {
		t.Errorf("net amount footer missing:\n%s", md)
	}
}

func TestSummaryMarkdown(t *testing.T) {
	account := capgains.NewAccount(
		capgains.Lot{Date: capgains.MustParse("2019-01-10"), Fund: "F", Shares: capgains.Q(10), CostBasis: usd(50)},
	)
	prices := capgains.NewPriceTable()
	prices.Set("F", usd(100))

	summary, err := account.NewSummary(prices)
	if err != nil {
		t.Fatalf("NewSummary() error = %v", err)
	}

	md := SummaryMarkdown(summary)
	for _, want := range []string{"| F |", "$1,000.00", "$500.00", "+$500.00", "**Total**"} {
		if !strings.Contains(md, want) {
			t.Errorf("summary markdown missing %q:\n%s", want, md)
		}
	}
}
