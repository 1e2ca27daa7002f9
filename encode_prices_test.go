package capgains

import (
	"strings"
	"testing"
)

func TestDecodePriceTable(t *testing.T) {
	prices, err := DecodePriceTable(strings.NewReader(`Fund,Share price
Total Stock Market Index,$100.00
International Index,$25.50
`))
	if err != nil {
		t.Fatalf("DecodePriceTable() error = %v", err)
	}
	if prices.Len() != 2 {
		t.Fatalf("got %d prices, want 2", prices.Len())
	}
	price, ok := prices.Price("International Index")
	if !ok || !price.Equal(USD(25.50)) {
		t.Errorf("price = %s (found=%v), want $25.50", price, ok)
	}
}

func TestDecodePriceTable_LastRowWins(t *testing.T) {
	prices, err := DecodePriceTable(strings.NewReader(`Fund,Share price
F,$10.00
F,$12.00
`))
	if err != nil {
		t.Fatalf("DecodePriceTable() error = %v", err)
	}
	price, _ := prices.Price("F")
	if !price.Equal(USD(12)) {
		t.Errorf("price = %s, want the later $12.00", price)
	}
}

func TestEncodePriceTable_RoundTrip(t *testing.T) {
	prices := priced("B Fund", 25.50, "A Fund", 1234.56)

	var b strings.Builder
	if err := EncodePriceTable(&b, prices); err != nil {
		t.Fatalf("EncodePriceTable() error = %v", err)
	}

	decoded, err := DecodePriceTable(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("DecodePriceTable() error = %v", err)
	}
	for _, fund := range prices.Funds() {
		want, _ := prices.Price(fund)
		got, ok := decoded.Price(fund)
		if !ok || !got.Equal(want) {
			t.Errorf("fund %q decoded as %s, want %s", fund, got, want)
		}
	}

	// funds are written in lexical order
	if !strings.Contains(b.String(), "A Fund") || strings.Index(b.String(), "A Fund") > strings.Index(b.String(), "B Fund") {
		t.Errorf("funds are not in lexical order:\n%s", b.String())
	}
}
