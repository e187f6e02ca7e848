package timeutil

import "testing"

func TestParseWindowDefault(t *testing.T) {
	days, label, err := ParseWindow("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if days != 7 || label != "1w" {
		t.Fatalf("expected 7 days labelled 1w, got %d %s", days, label)
	}
}

func TestParseWindowComposite(t *testing.T) {
	tests := map[string]struct {
		days  int
		label string
	}{
		"3d":        {3, "3d"},
		"1w2d":      {9, "1w2d"},
		"10 days":   {10, "1w3d"},
		"2 Weeks":   {14, "2w"},
		" 1wk 1d  ": {8, "1w1d"},
	}
	for in, want := range tests {
		days, label, err := ParseWindow(in)
		if err != nil {
			t.Fatalf("ParseWindow(%q): unexpected error: %v", in, err)
		}
		if days != want.days || label != want.label {
			t.Fatalf("ParseWindow(%q) = %d %s, want %d %s", in, days, label, want.days, want.label)
		}
	}
}

func TestParseWindowInvalid(t *testing.T) {
	for _, in := range []string{"noop", "0d", "3h", "1w-2d"} {
		if _, _, err := ParseWindow(in); err == nil {
			t.Fatalf("expected error for %q", in)
		}
	}
}
