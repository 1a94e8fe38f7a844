package util

import (
	"testing"
	"time"
)

func TestValidateAmount_Valid(t *testing.T) {
	testCases := []float64{0, 0.01, 1.0, 100.5, 9999999.99}

	for _, amount := range testCases {
		err := ValidateAmount(amount)
		if err != nil {
			t.Errorf("ValidateAmount(%f) error = %v, want nil", amount, err)
		}
	}
}

func TestValidateAmount_Negative(t *testing.T) {
	testCases := []float64{-0.01, -100, -9999.99}

	for _, amount := range testCases {
		err := ValidateAmount(amount)
		if err == nil {
			t.Errorf("ValidateAmount(%f) error = nil, want error", amount)
		}
	}
}

func TestValidateAmount_TooLarge(t *testing.T) {
	err := ValidateAmount(100000000)

	if err == nil {
		t.Error("ValidateAmount(100000000) error = nil, want error")
	}
}

func TestParseDate_Formats(t *testing.T) {
	testCases := []struct {
		in   string
		want time.Time
	}{
		{"2025-06-15", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"2025-06-15T09:30", time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)},
		{"2025-06-15T09:30:45", time.Date(2025, 6, 15, 9, 30, 45, 0, time.UTC)},
		{"2025-06-15T09:30:45Z", time.Date(2025, 6, 15, 9, 30, 45, 0, time.UTC)},
	}

	for _, tc := range testCases {
		got, err := ParseDate(tc.in, time.Time{})
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v, want nil", tc.in, err)
			continue
		}
		if !got.Equal(tc.want) {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDate_EmptyUsesFallback(t *testing.T) {
	fallback := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	got, err := ParseDate("", fallback)
	if err != nil {
		t.Fatalf("ParseDate(\"\") error = %v, want nil", err)
	}
	if !got.Equal(fallback) {
		t.Errorf("ParseDate(\"\") = %v, want fallback %v", got, fallback)
	}
}

func TestParseDate_Invalid(t *testing.T) {
	testCases := []string{
		"2025/06/15",
		"15-06-2025",
		"not-a-date",
		"2025-13-01",
		"2025-06-32",
	}

	for _, in := range testCases {
		if _, err := ParseDate(in, time.Time{}); err == nil {
			t.Errorf("ParseDate(%q) error = nil, want error", in)
		}
	}
}

func TestOneOf(t *testing.T) {
	choices := []string{"Binance", "M-pesa", "Bank"}

	if !OneOf("M-pesa", choices) {
		t.Error("OneOf(\"M-pesa\") = false, want true")
	}
	if OneOf("m-pesa", choices) {
		t.Error("OneOf(\"m-pesa\") = true, want false (choices are case sensitive)")
	}
	if OneOf("", choices) {
		t.Error("OneOf(\"\") = true, want false")
	}
	if OneOf("Bank", nil) {
		t.Error("OneOf with nil choices = true, want false")
	}
}
