package util

import "testing"

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0"},
		{14, "14"},
		{999, "999"},
		{1500, "1.5K"},
		{2500000, "2.5M"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatShare(t *testing.T) {
	tests := []struct {
		count, total int
		want         string
	}{
		{5, 14, "36%"},
		{1, 14, "7%"},
		{2, 3, "67%"},
		{3, 3, "100%"},
		{0, 0, "0%"},
	}
	for _, tt := range tests {
		if got := FormatShare(tt.count, tt.total); got != tt.want {
			t.Errorf("FormatShare(%d, %d) = %q, want %q", tt.count, tt.total, got, tt.want)
		}
	}
}
