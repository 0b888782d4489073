package timeutil

import "testing"

func TestParseWindow(t *testing.T) {
	tests := map[string]struct {
		days  int
		label string
	}{
		"365":       {365, "1y"},
		"90d":       {90, "12w6d"},
		"52w":       {364, "52w"},
		"1y2w":      {379, "1y2w"},
		" 2 Weeks ": {14, "2w"},
		"1y1d":      {366, "1y1d"},
	}
	for in, want := range tests {
		days, label, err := ParseWindow(in)
		if err != nil {
			t.Fatalf("ParseWindow(%q): %v", in, err)
		}
		if days != want.days || label != want.label {
			t.Fatalf("ParseWindow(%q) = %d %q, want %d %q", in, days, label, want.days, want.label)
		}
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"", "noop", "3h", "0d", "w"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}

func TestFormatWindow(t *testing.T) {
	if got := FormatWindow(0); got != "0d" {
		t.Fatalf("FormatWindow(0) = %q", got)
	}
	if got := FormatWindow(8); got != "1w1d" {
		t.Fatalf("FormatWindow(8) = %q", got)
	}
}
