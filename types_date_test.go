package capgains

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"6/28/2019", NewDate(2019, time.June, 28)},
		{"12/2/2020", NewDate(2020, time.December, 2)},
		{"2019-06-28", NewDate(2019, time.June, 28)},
		{"2019-6-8", NewDate(2019, time.June, 8)},
		{" 1/2/2021 ", NewDate(2021, time.January, 2)},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.in)
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseDate(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParseDate_Invalid(t *testing.T) {
	for _, in := range []string{"", "junk", "28/6/2019", "2019/06/28"} {
		if _, err := ParseDate(in); err == nil {
			t.Errorf("ParseDate(%q) should fail", in)
		}
	}
}

func TestDateCompare(t *testing.T) {
	early := NewDate(2019, time.June, 28)
	late := NewDate(2020, time.December, 2)

	if !early.Before(late) || late.Before(early) {
		t.Error("Before() is wrong")
	}
	if !late.After(early) || early.After(late) {
		t.Error("After() is wrong")
	}
	if early.Compare(late) != -1 || late.Compare(early) != 1 || early.Compare(early) != 0 {
		t.Error("Compare() is wrong")
	}
}

func TestDateNormalization(t *testing.T) {
	// day overflow rolls into the next month
	if got := NewDate(2019, time.January, 32); got != NewDate(2019, time.February, 1) {
		t.Errorf("NewDate(2019, January, 32) = %s", got)
	}
}
