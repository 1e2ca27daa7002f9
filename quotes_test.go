package capgains

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestLatestQuote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("isin") {
		case "OK0000000001":
			fmt.Fprint(w, `{"isin":"OK0000000001","last":79.98,"bid":79.96}`)
		case "STR000000002":
			// sometimes the API returns the value as a localized string
			fmt.Fprint(w, `{"isin":"STR000000002","last":"80,15"}`)
		case "BID000000003":
			// empty last falls back to the bid
			fmt.Fprint(w, `{"isin":"BID000000003","last":"./.","bid":42.5}`)
		default:
			fmt.Fprint(w, `{"last":"./.","bid":0,"bidsize":0}`)
		}
	}))
	defer server.Close()

	old := quoteEndpoint
	quoteEndpoint = server.URL + "/refresh.php?isin="
	defer func() { quoteEndpoint = old }()

	client := server.Client()

	tests := []struct {
		isin string
		want float64
	}{
		{"OK0000000001", 79.98},
		{"STR000000002", 80.15},
		{"BID000000003", 42.5},
	}
	for _, tt := range tests {
		got, err := latestQuote(client, tt.isin, tt.isin)
		if err != nil {
			t.Errorf("latestQuote(%s) error = %v", tt.isin, err)
			continue
		}
		if got != tt.want {
			t.Errorf("latestQuote(%s) = %v, want %v", tt.isin, got, tt.want)
		}
	}

	// an empty bid is an error, not a zero price
	if _, err := latestQuote(client, "empty", "EMPTY0000004"); err == nil {
		t.Error("latestQuote(empty) should fail on an empty bid")
	}
}
