package services

import "testing"

func TestFormatUSD(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{100, "$100.00"},
		{40.5, "$40.50"},
		{1234.567, "$1234.57"},
		{-12.5, "$-12.50"},
	}
	for _, tt := range tests {
		if got := FormatUSD(tt.amount); got != tt.want {
			t.Errorf("FormatUSD(%v) = %s, want %s", tt.amount, got, tt.want)
		}
	}
}

func TestSharePercent(t *testing.T) {
	if got := SharePercent(60, 100); got != "60.0%" {
		t.Errorf("expected 60.0%%, got %s", got)
	}
	if got := SharePercent(1, 3); got != "33.3%" {
		t.Errorf("expected 33.3%%, got %s", got)
	}
	// Zero total must not divide.
	if got := SharePercent(10, 0); got != "0.0%" {
		t.Errorf("expected guarded 0.0%%, got %s", got)
	}
}
