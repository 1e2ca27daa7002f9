package capgains

import "testing"

func TestMoneyString(t *testing.T) {
	tests := []struct {
		in   Money
		want string
	}{
		{USD(50), "$50.00"},
		{USD(1234.56), "$1,234.56"},
		{USD(-20), "-$20.00"},
		{USD(0), "$0.00"},
	}
	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := USD(500).SignedString(); got != "+$500.00" {
		t.Errorf("SignedString() = %q, want +$500.00", got)
	}
	if got := USD(0).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want -", got)
	}
	if got := USD(-20).SignedString(); got != "-$20.00" {
		t.Errorf("SignedString() = %q, want -$20.00", got)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	price := USD(100)

	amount := price.Mul(Q(2.5))
	if !amount.Equal(USD(250)) {
		t.Errorf("100 * 2.5 = %s, want $250", amount)
	}
	if got := amount.Div(Q(2.5)); !got.Equal(price) {
		t.Errorf("250 / 2.5 = %s, want $100", got)
	}
	if got := USD(100).DivPrice(USD(400)); got.Compare(Q(0.25)) != 0 {
		t.Errorf("100 / $400 = %s, want 0.25", got)
	}
}

func TestQuantityWholeShares(t *testing.T) {
	if got := Q(10.75).Floor(); got.Compare(Q(10)) != 0 {
		t.Errorf("Floor(10.75) = %s, want 10", got)
	}
	if !Q(3).IsInteger() || Q(3.5).IsInteger() {
		t.Error("IsInteger() is wrong")
	}
}
