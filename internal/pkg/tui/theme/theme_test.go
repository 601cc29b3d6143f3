package theme

import "testing"

func TestDefault_IsSingleton(t *testing.T) {
	if Default() != Default() {
		t.Error("expected Default to return the same instance")
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "#FF6B6B", want: "#FF6B6B"},
		{in: "FF6B6B", want: string(DimGray)},
		{in: "", want: string(DimGray)},
		{in: "#FFF", want: string(DimGray)},
	}

	for _, tt := range tests {
		if got := string(Hex(tt.in)); got != tt.want {
			t.Errorf("Hex(%q): expected %s, got %s", tt.in, tt.want, got)
		}
	}
}
